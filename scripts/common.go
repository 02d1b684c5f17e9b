package scripts

import (
	"encoding/json"
	"io"
	"net/http"
)

// NamedApiResource is pokeapi's stub form of a linked resource.
type NamedApiResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// FollowNamedResource fetches the resource behind a stub and decodes it
// into T.
func FollowNamedResource[T any](n NamedApiResource) (T, error) {
	var followed T

	response, err := http.Get(n.Url)
	if err != nil {
		return followed, err
	}
	defer response.Body.Close()

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return followed, err
	}

	if err := json.Unmarshal(bytes, &followed); err != nil {
		return followed, err
	}

	return followed, nil
}

// GetJson fetches a url and decodes the response into T.
func GetJson[T any](url string) (T, error) {
	return FollowNamedResource[T](NamedApiResource{Url: url})
}
