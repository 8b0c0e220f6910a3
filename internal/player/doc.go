// Package player drives mpv over its JSON IPC socket.
//
// A single Controller interface covers everything the note-taking commands
// need: load, seek, position queries, pause control, screenshots, and
// shutdown. Two adapters implement it. The attached backend talks to an mpv
// the user started themselves with --input-ipc-server; the managed backend
// launches its own mpv under the state directory, guarded by a flock so only
// one managed instance exists. The backend is chosen once from config, never
// probed per call.
package player
