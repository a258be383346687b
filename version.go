package automata

// Version is the library and CLI version. Overridden at build time via -ldflags.
var Version = "0.1.0"
