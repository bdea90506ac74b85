// Package design provides RBJ "Audio EQ Cookbook" biquad designers.
//
// Each designer returns one set of biquad coefficients consumable by
// dsp/filter/biquad. Parameters that cannot be realized (frequency outside
// (0, Nyquist), non-finite sample rate) yield zero coefficients; a
// non-positive Q falls back to 1/sqrt(2).
package design
