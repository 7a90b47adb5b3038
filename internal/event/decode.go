package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published in process already hold T;
// anything else, such as a map decoded from JSON, is re-encoded through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(data, &result)
	return result, err
}
