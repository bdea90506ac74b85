// Package preset imports parametric-EQ presets from the plain-text exchange
// formats used by Equalizer APO.
//
// Two grammars are supported:
//
//   - APO config: one "Filter N: ON <TYPE> Fc <f> Hz Gain <g> dB Q <q>" line
//     per filter plus optional "Preamp: <g> dB" lines. See [ImportAPO].
//   - GraphicEQ config: a single "GraphicEQ: <f> <g>; <f> <g>; ..." line
//     describing a graphic equalizer curve. See [ImportGraphicEQ].
//
// Importing never fails. Clauses that cannot be parsed fall back to their
// default value, and a text without any recognized line yields a [Result]
// with no bands. Every import call is a pure function of its input and is
// safe for concurrent use.
//
// [WriteAPO] writes a [Result] back to APO config text.
package preset
