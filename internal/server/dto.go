package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdrpinto/gridastar"
)

var errBadPoint = errors.New("position must be [row, col]")

// point is a [row, col] pair on the wire.
type point [2]int

func (p point) position() gridastar.Position {
	return gridastar.Position{Row: p[0], Col: p[1]}
}

// UnmarshalJSON accepts exactly two integers.
func (p *point) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %w", errBadPoint, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w, got %d values", errBadPoint, len(pair))
	}
	p[0], p[1] = pair[0], pair[1]
	return nil
}

type searchRequest struct {
	Grid  []string `json:"grid" binding:"required"`
	Start *point   `json:"start" binding:"required"`
	Goal  *point   `json:"goal" binding:"required"`
}

type pathResponse struct {
	Found         bool    `json:"found"`
	Cost          int     `json:"cost"`
	ExpandedNodes int     `json:"expanded_nodes"`
	Path          []point `json:"path"`
}

func newPathResponse(res gridastar.Result) pathResponse {
	out := pathResponse{
		Found:         res.Found,
		Cost:          res.Cost,
		ExpandedNodes: res.ExpandedNodes,
		Path:          make([]point, 0, len(res.Path)),
	}
	for _, p := range res.Path {
		out.Path = append(out.Path, point{p.Row, p.Col})
	}
	return out
}

type sessionResponse struct {
	ID   string `json:"id"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

type errorResponse struct {
	Error string `json:"error"`
}
