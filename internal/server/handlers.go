package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/entropy-crop-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_smart_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArgs marks tool arguments that could not be decoded or are
// missing a required value.
var errInvalidArgs = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed params or arguments return code -32602. Other tool failures
// return code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	s.debugf("tool %s", params.Name)
	result, err := s.executeTool(params.Name, params.Arguments)
	if errors.Is(err, errInvalidArgs) {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Decodes arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)

	// Information Measures
	case "image_entropy":
		return s.handleImageEntropy(args)
	case "image_histogram":
		return s.handleImageHistogram(args)

	// Smart Cropping
	case "image_smart_crop":
		return s.handleImageSmartCrop(args)
	case "image_smart_crop_batch":
		return s.handleImageSmartCropBatch(args)

	// Layer Merging
	case "image_flatten":
		return s.handleImageMerge(args, imaging.MergeFlatten)
	case "image_mosaic":
		return s.handleImageMerge(args, imaging.MergeMosaic)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing arguments", errInvalidArgs)
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s is required", errInvalidArgs, field)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, missing("path")
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, missing("path")
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

// === Information Measure Handlers ===

type imageRegionArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageEntropy(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := imaging.RegionEntropy(img, a.Region)
	if err == nil && res.SkippedRows > 0 {
		s.debugf("entropy %s: skipped %d unreadable rows", a.Path, res.SkippedRows)
	}
	return res, err
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.RegionHistogram(img, a.Region)
}

// === Smart Crop Handlers ===

type imageSmartCropArgs struct {
	Path    string  `json:"path"`
	Ratio   float64 `json:"ratio"`
	Scale   float64 `json:"scale"`
	Preview *bool   `json:"preview"`
}

func (s *Server) handleImageSmartCrop(args json.RawMessage) (interface{}, error) {
	var a imageSmartCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Ratio == 0 {
		return nil, missing("ratio")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	preview := a.Preview == nil || *a.Preview

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SmartCrop(img, a.Ratio, a.Scale, preview, s.searchOptions()...)
}

type imageSmartCropBatchArgs struct {
	Paths   []string `json:"paths"`
	Ratio   float64  `json:"ratio"`
	Workers int      `json:"workers"`
}

func (s *Server) handleImageSmartCropBatch(args json.RawMessage) (interface{}, error) {
	var a imageSmartCropBatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, missing("paths")
	}
	if a.Ratio == 0 {
		return nil, missing("ratio")
	}
	if a.Workers <= 0 {
		a.Workers = s.cfg.Workers
	}
	return imaging.SmartCropBatch(context.Background(), s.cache, a.Paths, a.Ratio, a.Workers, s.searchOptions()...)
}

// === Layer Merge Handlers ===

type imageMergeArgs struct {
	Layers []imaging.LayerSpec `json:"layers"`
}

func (s *Server) handleImageMerge(args json.RawMessage, mode imaging.MergeMode) (interface{}, error) {
	var a imageMergeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Layers) == 0 {
		return nil, missing("layers")
	}
	return imaging.MergeLayers(s.cache, s.compositor, a.Layers, mode)
}
