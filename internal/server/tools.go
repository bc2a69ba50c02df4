package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

func layersProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Layers bottom first. Each layer is an image file placed at an offset on a shared canvas.",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":     pathProperty(),
				"offset_x": map[string]interface{}{"type": "integer", "description": "Canvas X of the layer's left edge. Default 0"},
				"offset_y": map[string]interface{}{"type": "integer", "description": "Canvas Y of the layer's top edge. Default 0"},
				"opacity":  map[string]interface{}{"type": "number", "description": "Layer opacity 0-1. Default 1"},
			},
			"required": []string{"path"},
		},
		"minItems": 1,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, aspect ratio and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and aspect ratio of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Information Measures
		{
			Name:        "image_entropy",
			Description: "Measure the Shannon entropy of an image or region in bits, jointly over the red, green and blue histograms and per channel. Higher values mean more visual detail.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty("Optional region to measure. Default is the whole image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_histogram",
			Description: "Return the 256-level red, green and blue histograms of an image or region with the mean intensity and mean colour.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty("Optional region to count. Default is the whole image"),
				},
				"required": []string{"path"},
			},
		},

		// Smart Cropping
		{
			Name:        "image_smart_crop",
			Description: "Find the crop of an image with the requested aspect ratio that keeps the most detail. Strips of low entropy are trimmed from the edges until the ratio is reached.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Target width/height, e.g. 1.0 for square or 1.7778 for 16:9",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor for the preview image. Default 1.0",
						"default":     1.0,
					},
					"preview": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the cropped image as base64-encoded PNG. Default true",
						"default":     true,
					},
				},
				"required": []string{"path", "ratio"},
			},
		},
		{
			Name:        "image_smart_crop_batch",
			Description: "Run image_smart_crop on several files concurrently and return the selected regions in request order. Files that fail are reported individually.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"description": "Absolute paths to the image files",
						"items":       map[string]interface{}{"type": "string"},
						"minItems":    1,
					},
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Target width/height applied to every file",
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum concurrent searches. Default from server configuration",
					},
				},
				"required": []string{"paths", "ratio"},
			},
		},

		// Layer Merging
		{
			Name:        "image_flatten",
			Description: "Merge layered images onto a canvas the size of the first layer. Parts of later layers outside it are clipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"layers": layersProperty(),
				},
				"required": []string{"layers"},
			},
		},
		{
			Name:        "image_mosaic",
			Description: "Merge layered images onto a canvas grown to cover every layer, preserving their relative offsets.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"layers": layersProperty(),
				},
				"required": []string{"layers"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
