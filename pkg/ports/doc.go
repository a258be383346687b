/*
Package ports defines the driven ports (interfaces) for the automata engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various definition sources and report stores.

# Key Interfaces

  - DefinitionLoader: Responsible for loading automaton definitions (e.g., text files, YAML or JSON documents, Memory).
  - ReportStore: Responsible for persisting evaluation reports (Memory, File, Redis).
  - Engine: The surface adapters (HTTP, MCP) drive.
*/
package ports
