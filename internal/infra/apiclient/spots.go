package apiclient

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/infra"
	"parking-portal/internal/infra/apiclient/dto"
	"parking-portal/internal/infra/converter"
)

type spotShape string

const (
	shapeBare    spotShape = "bare"
	shapePage    spotShape = "page"
	shapeUnknown spotShape = "unknown"
)

// classifySpots tells a bare array from a {"content": [...]} envelope.
func classifySpots(raw []byte) spotShape {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return shapeUnknown
	}
	switch trimmed[0] {
	case '[':
		return shapeBare
	case '{':
		var envelope map[string]json.RawMessage
		if json.Unmarshal(trimmed, &envelope) != nil {
			return shapeUnknown
		}
		content, ok := envelope["content"]
		if ok && len(bytes.TrimSpace(content)) > 0 && bytes.TrimSpace(content)[0] == '[' {
			return shapePage
		}
	}
	return shapeUnknown
}

// decodeSpots never fails. Unexpected shapes are a display concern and become
// an empty list.
func decodeSpots(raw []byte, conv *converter.Converter, logger *slog.Logger) []parking.Spot {
	var items []dto.Spot

	shape := classifySpots(raw)
	switch shape {
	case shapeBare:
		if err := json.Unmarshal(raw, &items); err != nil {
			logFormatError(logger, shape, err)
			return []parking.Spot{}
		}
	case shapePage:
		var page dto.SpotPage
		if err := json.Unmarshal(raw, &page); err != nil {
			logFormatError(logger, shape, err)
			return []parking.Spot{}
		}
		items = page.Content
	default:
		logFormatError(logger, shape, nil)
		return []parking.Spot{}
	}

	spots, err := conv.Spots(items)
	if err != nil {
		logFormatError(logger, shape, err)
		return []parking.Spot{}
	}
	return spots
}

func logFormatError(logger *slog.Logger, shape spotShape, err error) {
	logger.Warn("Unexpected spot list payload, using empty list",
		slog.String("kind", string(infra.KindFormat)),
		slog.String("shape", string(shape)),
		slog.Any("error", err),
	)
}
