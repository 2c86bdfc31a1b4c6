// Package speech turns microphone input into a live transcript for the
// terminal client's dictation mode.
//
// A Session owns one Microphone and one Recognizer. The recognizer streams
// cumulative transcripts: every result replaces the previous one rather than
// appending to it.
package speech
