// ABOUTME: Layer mixing package
// ABOUTME: Combines base noise with ambient layers and soft-limits peaks
// Package mix combines a base signal with ambient layers.
//
// The base is scaled by Levels.Base and the layers share Levels.Layer
// equally. Samples whose magnitude exceeds 0.95 after summing are passed
// through a tanh soft limiter instead of being hard clipped.
//
// Example:
//
//	mixed := mix.Mix(base, []ambient.Layer{rain, birds}, mix.DefaultLevels())
package mix
