// Package cli implements the interactive moodscreen terminal client.
//
// Every screen (login, register, face detection, questionnaire, result,
// combined result) is a router view: commands navigate to a path, the
// navigation guard decides where the user actually lands, and the views of
// the matched route chain run in order, parent first. Screens only call the
// API client, write to the result store and print.
//
// Interactive input goes through small seams (getSimpleText, getPassword,
// readPassword, printlnFn) so tests can drive the screens without a
// terminal.
package cli
