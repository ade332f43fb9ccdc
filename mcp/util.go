package mcp

import (
	"fmt"
)

// Helper for reading tool arguments safely
func getArgs(arguments interface{}) (map[string]interface{}, bool) {
	if arguments == nil {
		return map[string]interface{}{}, true
	}
	args, ok := arguments.(map[string]interface{})
	return args, ok
}

// Helper for converting string arguments safely
func getStringArg(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key].(string)
	return val, ok
}

// requireStringArg returns a non-empty string argument or an error naming it.
func requireStringArg(args map[string]interface{}, key string, missing error) (string, error) {
	val, ok := getStringArg(args, key)
	if !ok || val == "" {
		return "", fmt.Errorf("%w: %s", missing, key)
	}
	return val, nil
}

// stringSchema describes a string tool argument.
func stringSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}
