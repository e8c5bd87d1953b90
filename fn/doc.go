// Package fn provides small function combinators: [Tap], [Alt], [Once],
// [After] and [Compose].
package fn
