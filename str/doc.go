// Package str provides string helpers: conversion, splitting, trimming,
// padding and case conversion.
//
// Every helper accepts any value and works on its string form, so they can
// be chained after operations that produce numbers or other scalars:
//
//	str.PadStart(7, 3, "0")         // → "007"
//	str.KebabCase("getMyURL")       // → "get-my-url"
//	str.Split("a,b,c", ",")         // → [a b c]
package str
