/*
Package solidedge exposes Solid Edge part modeling as a session-scoped
construction engine, served over the Model Context Protocol (MCP).

The CAD kernel hands out live, transient topology objects: faces, edges,
vertices, and reference planes reachable only through 1-based COM-style
collections that reshuffle whenever the model changes. The engine gives
callers a stable contract over that surface: 0-based indices resolved at
call time, fingerprint-based face classification, and a single
construction session that tracks the open sketch, the accumulated
profiles awaiting multi-profile features, and the axis of revolution.

# Concept

Every operation re-resolves the active document, resolves indices
against the collections as they exist right now, and reports failures as
structured, classified errors instead of transport faults. Profiles
accumulate as sketches close; a loft or sweep consumes and clears them
in one step, so a failed feature never leaves half-consumed state
behind.

# Usage

Wire the engine onto a document resolver and serve it:

	package main

	import (
		"log"

		solidedge "github.com/tylerwagler/SolidEdge-MCP-sub001"
		"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
		mcpserver "github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/mcp"
	)

	func main() {
		eng, err := solidedge.New(memory.NewKernel())
		if err != nil {
			log.Fatal(err)
		}

		srv := mcpserver.NewServer(solidedge.Version,
			eng.Sketch(), eng.Features(), eng.Query(), eng.Session())
		if err := srv.ServeStdio(); err != nil {
			log.Fatal(err)
		}
	}
*/
package solidedge
