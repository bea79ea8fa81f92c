package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indicators is a string-keyed map that remembers insertion order.
// Setting an existing key replaces its value in place.
type Indicators struct {
	keys   []string
	values map[string]string
}

// NewIndicators builds indicators from alternating key, value arguments.
func NewIndicators(kv ...string) Indicators {
	var in Indicators
	for i := 0; i+1 < len(kv); i += 2 {
		in.Set(kv[i], kv[i+1])
	}
	return in
}

// Set stores value under key.
func (in *Indicators) Set(key, value string) {
	if in.values == nil {
		in.values = make(map[string]string)
	}
	if _, exists := in.values[key]; !exists {
		in.keys = append(in.keys, key)
	}
	in.values[key] = value
}

// Get returns the value stored under key.
func (in Indicators) Get(key string) (string, bool) {
	v, ok := in.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (in Indicators) Keys() []string {
	return append([]string(nil), in.keys...)
}

// Clone returns a copy that shares no storage with in.
func (in Indicators) Clone() Indicators {
	out := Indicators{keys: append([]string(nil), in.keys...)}
	if in.values != nil {
		out.values = make(map[string]string, len(in.values))
		for k, v := range in.values {
			out.values[k] = v
		}
	}
	return out
}

// Len returns the number of entries.
func (in Indicators) Len() int { return len(in.keys) }

// Each calls fn for every entry in insertion order.
func (in Indicators) Each(fn func(key, value string)) {
	for _, k := range in.keys {
		fn(k, in.values[k])
	}
}

// MarshalJSON writes a JSON object with keys in insertion order.
func (in Indicators) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range in.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(in.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of strings, keeping document order.
func (in *Indicators) UnmarshalJSON(data []byte) error {
	*in = Indicators{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("indicators: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("indicators: expected key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("indicators: value for %q: %w", key, err)
		}
		in.Set(key, value)
	}
	_, err = dec.Token()
	return err
}
