package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// SettingsClient supplies site-wide contact configuration with graceful
// degradation: any fetch failure silently keeps the hard-coded
// defaults. The storefront never shows an error state for this.
//
// There is no timer-driven refresh. Load runs once on mount and
// Refresh repeats the fetch on explicit demand only.
type SettingsClient struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	site    SiteSettings
	contact ContactSettings
	loading bool
}

func NewSettingsClient(baseURL string, httpClient *http.Client) *SettingsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SettingsClient{
		baseURL: baseURL,
		http:    httpClient,
		site:    DefaultSiteSettings(),
		contact: DefaultContactSettings(),
		loading: true,
	}
}

func (s *SettingsClient) fetch(ctx context.Context) (SettingsPayload, error) {
	// Cache-busting query param: a fresh read is required every time.
	url := fmt.Sprintf("%s/api/admin/settings?t=%d", s.baseURL, time.Now().UnixNano())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return SettingsPayload{}, err
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.http.Do(req)
	if err != nil {
		return SettingsPayload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return SettingsPayload{}, fmt.Errorf("settings fetch returned %d", resp.StatusCode)
	}

	var payload SettingsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SettingsPayload{}, err
	}
	return payload, nil
}

func (s *SettingsClient) applyOrKeepDefaults(payload SettingsPayload, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		// Fail open to the defaults; background reads never surface
		// errors to the caller.
		log.Printf("settings load failed, keeping defaults: %v", err)
		return
	}

	s.site = payload.SiteSettings
	s.contact = payload.ContactSettings
	if s.site.Team == nil {
		s.site.Team = []TeamMember{}
	}
	if s.contact.Addresses == nil {
		s.contact.Addresses = []Address{}
	}
}

// Load performs the mount-time fetch. Safe to call once; Loading
// reports false after the first attempt completes either way.
func (s *SettingsClient) Load(ctx context.Context) {
	payload, err := s.fetch(ctx)
	s.applyOrKeepDefaults(payload, err)
}

// Refresh repeats the fetch-and-replace on demand, typically after an
// admin save.
func (s *SettingsClient) Refresh(ctx context.Context) {
	payload, err := s.fetch(ctx)
	s.applyOrKeepDefaults(payload, err)
}

func (s *SettingsClient) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SettingsClient) SiteSettings() SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.site
}

func (s *SettingsClient) ContactSettings() ContactSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contact
}

func (s *SettingsClient) Team() []TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.site.Team
}
