// Package server implements the MCP (Model Context Protocol) server for
// entropy-guided image cropping.
//
// This package provides a JSON-RPC 2.0 server that exposes the imaging
// package through the MCP protocol, so that MCP clients can measure image
// detail and pick crops that keep it.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width, height and aspect ratio
//
// Region Operations:
//   - image_crop: Extract rectangular region
//
// Information Measures:
//   - image_entropy: Joint and per-channel entropy of an image or region
//   - image_histogram: Channel histograms, mean intensity and mean colour
//
// Smart Cropping:
//   - image_smart_crop: Entropy-maximizing crop for a target aspect ratio
//   - image_smart_crop_batch: The same for many files concurrently
//
// Layer Merging:
//   - image_flatten: Merge layers onto the first layer's canvas
//   - image_mosaic: Merge layers onto a canvas covering all of them
//
// # Configuration
//
// Search limits, batch concurrency and the merge background come from a
// config.Config. Setting IMAGE_MCP_LOG_LEVEL=debug logs each request and the
// progress of every search to stderr.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses with:
//   - code: -32602 for malformed params or tool arguments, -32000 for tool
//     execution failure, -32601 for unknown methods
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
