package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// buildCacheKey derives the idempotency cache key for one tool call.
// "correlation_id" keys by the caller-supplied id, "arguments_hash" by a
// canonical hash of the search arguments, and "auto" prefers the id when
// the caller provided one.
func buildCacheKey(toolName, correlationID string, providedID bool, args map[string]any, strategy string) (string, error) {
	keyStrategy := strings.ToLower(strings.TrimSpace(strategy))
	if keyStrategy == "" {
		keyStrategy = "auto"
	}

	var key string
	switch keyStrategy {
	case "correlation_id":
		key = correlationID
	case "arguments_hash":
		hash, err := hashArguments(args)
		if err != nil {
			return "", err
		}
		key = hash
	case "auto":
		if providedID && correlationID != "" {
			key = correlationID
		} else {
			hash, err := hashArguments(args)
			if err != nil {
				return "", err
			}
			key = hash
		}
	default:
		return "", fmt.Errorf("unsupported cache key strategy: %s", strategy)
	}
	if strings.TrimSpace(key) == "" {
		return "", nil
	}
	return toolName + ":" + key, nil
}

// hashArguments hashes the search arguments with correlation fields
// excluded, so the same search keyed by different request ids still
// shares a cache entry under arguments_hash.
func hashArguments(args map[string]any) (string, error) {
	filtered := make(map[string]any, len(args))
	for k, v := range args {
		if k == "correlation_id" || k == "request_id" {
			continue
		}
		filtered[k] = v
	}
	data, err := canonicalJSON(filtered)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalJSON encodes a value with map keys sorted, so equal argument
// maps always hash identically.
func canonicalJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return []byte("null"), nil
	case string:
		return []byte(strconv.Quote(v)), nil
	case json.Number:
		return []byte(v.String()), nil
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := canonicalJSON(item)
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Quote(key))
			buf.WriteByte(':')
			data, err := canonicalJSON(v[key])
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v)
	}
}
