// Package unblend restores the transparency of images that were flattened
// onto a pure white background.
//
// Flattening an anti-aliased image over white bakes the alpha channel into
// the colors: every partially transparent pixel gets mixed with white, which
// later shows up as gray halos when the image is placed on darker
// backgrounds. This package reverses that blend per pixel, estimating the
// original color and opacity from how far each pixel sits from white. The
// package works entirely in memory; no network or GPU is required.
package unblend
