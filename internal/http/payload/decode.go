package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Decoder reads JSON request bodies. An empty body decodes to the zero value so
// that required field validation decides whether it is acceptable.
type Decoder struct{}

func (Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	return DecodePayload(r, object)
}

func DecodePayload(r *http.Request, object any) (err error) {
	if r.Body == nil {
		return nil
	}

	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(r.Body)

	err = decoder.Decode(object)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
