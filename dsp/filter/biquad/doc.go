// Package biquad runs cascades of second-order IIR sections.
//
// A Section filters with Direct Form II Transposed using a set of
// Coefficients; a Chain cascades sections behind an input gain. An equalizer
// setting becomes one Chain with one section per active band. Coefficient
// design lives in dsp/filter/design.
package biquad
