/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Mapping ties a Go type to the entity type name stored on its rows and the
// templates that produce its key attributes.
type Mapping struct {
	EntityType string
	IndexMap   map[string]string
}

var (
	indexMapRegistry = make(map[reflect.Type]Mapping)
	mu               sync.RWMutex
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// RegisterIndexMap associates a Go type T with its entity type name and index map (pk, sk, ...).
// Registering the same type twice panics to prevent accidental overrides.
func RegisterIndexMap[T any](entityType string, idxMap map[string]string) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	if _, exists := indexMapRegistry[t]; exists {
		panic(fmt.Sprintf("index map registry: type %s already registered", t))
	}
	indexMapRegistry[t] = Mapping{EntityType: entityType, IndexMap: idxMap}
}

// GetIndexMap retrieves the mapping for type T, if any.
func GetIndexMap[T any]() (Mapping, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}

// Expand fills every template of the index map from the attributes of entity.
// A macro naming an absent or empty attribute is an error so that a row is
// never written under a truncated key.
func Expand(idxMap map[string]string, entity any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	res := make(map[string]string, len(idxMap))
	for field, template := range idxMap {
		var missing []string
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			name := strings.Trim(macro, "{}")
			v := scalarString(av[name])
			if v == "" {
				missing = append(missing, name)
			}
			return v
		})
		if len(missing) > 0 {
			return nil, fmt.Errorf("index map field %q: empty attribute(s) %s", field, strings.Join(missing, ", "))
		}
		res[field] = expanded
	}
	return res, nil
}

func scalarString(val types.AttributeValue) string {
	switch tv := val.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		return ""
	}
}
