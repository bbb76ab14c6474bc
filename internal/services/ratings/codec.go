package ratings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mcoot/moviecat/internal/model"
)

// voteCodec stores one identity's ratings as a JSON object keyed by the
// decimal movie id, e.g. {"550": 4, "603": 2.5}. Keys are written and read
// in slice order so the collection keeps its order across restarts.
type voteCodec struct{}

func (voteCodec) Encode(items []model.Rating) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, err := json.Marshal(r.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatInt(int64(r.MovieID), 10))
		buf.WriteString(`":`)
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (voteCodec) Decode(raw json.RawMessage) ([]model.Rating, error) {
	items := []model.Rating{}
	if len(raw) == 0 || string(raw) == "null" {
		return items, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("ratings must be a JSON object, got %v", tok)
	}

	seen := map[model.MovieID]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id %q: %w", key, err)
		}

		var value float64
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid rating for movie %d: %w", id, err)
		}

		rating := model.Rating{MovieID: model.MovieID(id), Value: value}
		if i, ok := seen[rating.MovieID]; ok {
			items[i] = rating
			continue
		}
		seen[rating.MovieID] = len(items)
		items = append(items, rating)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}
