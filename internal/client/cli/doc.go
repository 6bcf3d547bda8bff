// Package cli provides the interactive StudyTrack command-line client.
//
// It wires configuration, the HTTP API client, and an interactive REPL for
// managing a personal syllabus. Typical flow: register or log in, then add
// topics, mark them done, and check the dashboard.
//
// Key features:
//   - Register / Login / Logout
//   - Add, list and delete syllabus topics
//   - Mark topics completed
//   - Dashboard with progress and revision reminders
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
