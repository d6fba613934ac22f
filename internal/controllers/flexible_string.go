package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dileepkakara/portfolio/internal/utils"
)

// FlexibleTags accepts a JSON array of strings or a single comma separated
// string. Entries are trimmed and empty ones dropped.
type FlexibleTags []string

func (ft *FlexibleTags) UnmarshalJSON(data []byte) error {
	if ft == nil {
		return fmt.Errorf("FlexibleTags: nil receiver")
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*ft = FlexibleTags{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		*ft = FlexibleTags(utils.CleanTags(list))
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*ft = FlexibleTags(utils.ParseTags(s))
		return nil
	}

	return fmt.Errorf("FlexibleTags: expected string or list of strings, got %s", string(data))
}

func (ft FlexibleTags) Strings() []string {
	if ft == nil {
		return []string{}
	}
	return []string(ft)
}
