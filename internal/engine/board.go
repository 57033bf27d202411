package engine

import (
	"encoding/json"
	"fmt"

	"gridgame/internal/rules"
	apperr "gridgame/pkg/errors"

	"gorm.io/datatypes"
)

func encodeBoard(b rules.Board) (datatypes.JSON, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("%w: encode board: %v", apperr.ErrInvariantViolation, err)
	}
	return datatypes.JSON(raw), nil
}

func decodeBoard(raw datatypes.JSON) (rules.Board, error) {
	var b rules.Board
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: decode board: %v", apperr.ErrInvariantViolation, err)
	}
	return b, nil
}
