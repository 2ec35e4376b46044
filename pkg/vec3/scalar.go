package vec3

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Scalar is a float64 whose JSON form survives NaN and infinities: finite values are numbers,
// the rest are the strings "NaN", "+Inf" and "-Inf".
type Scalar float64

func (s Scalar) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(formatComponent(f))
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidComponent, err)
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidComponent, err)
	}
	*s = Scalar(f)
	return nil
}
