package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"
)

const defaultTimeout = 5 * time.Second

// HTTPClientDirectory resolves client references against the client
// directory service. Bookings only keep a weak {id, name} reference, so a
// lookup failure is reported to the caller and never treated as fatal here.
type HTTPClientDirectory struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IClientDirectory = (*HTTPClientDirectory)(nil)

func NewHTTPClientDirectory(baseURL string) *HTTPClientDirectory {
	return &HTTPClientDirectory{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (d *HTTPClientDirectory) ResolveClient(ctx context.Context, clientID string) (entities.ClientRef, error) {
	endpoint := fmt.Sprintf("%s/clients/%s", d.baseURL, url.PathEscape(clientID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.ClientRef{}, err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		log.Printf("[directory][client] lookup failed client_id=%s err=%v", clientID, err)
		return entities.ClientRef{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.ClientRef{}, fmt.Errorf("client directory returned status %d", resp.StatusCode)
	}

	var body struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.ClientRef{}, err
	}
	if body.ID == "" {
		body.ID = clientID
	}
	return entities.ClientRef{ID: body.ID, Name: body.Name}, nil
}
