// Package studyfile parses plain-text study files into question/answer
// entries.
//
// A study file is a newline-delimited UTF-8 document in which every line
// that starts with a number followed by a dot opens a new question:
//
//	1. What is the capital of France?
//	Paris
//	2. What is the capital of Japan?
//	Tokyo
//	Japan's capital since 1869.
//
// All non-blank lines after a question, up to the next question or the end
// of the file, form its answer. Blank lines are ignored everywhere, text
// before the first question has nothing to attach to and is skipped, and a
// question with no answer lines is dropped with a warning.
//
// Parsing is a single forward scan and never fails on structure; only input
// that is not valid UTF-8 (or a failing reader) produces an error.
package studyfile
