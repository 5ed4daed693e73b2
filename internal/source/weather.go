// Пакет source — внешний источник данных для пайплайна:
// периодический HTTP-опрос, результаты которого публикуются в брокер.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/abhijeet3015/socialstream/internal/ports"
)

var _ ports.PayloadFetcher = (*WeatherClient)(nil)

type WeatherConfig struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Current   string
	Timeout   time.Duration
}

// WeatherClient — клиент погодного API.
// Fetch возвращает ошибку значением и никогда не подмешивает её в payload:
// вызывающий цикл сам решает, пропустить такт или остановиться.
type WeatherClient struct {
	client *http.Client
	cfg    WeatherConfig
}

func NewWeatherClient(cfg WeatherConfig) *WeatherClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WeatherClient{
		client: &http.Client{Timeout: timeout},
		cfg:    cfg,
	}
}

// Fetch — один запрос к API; payload возвращается сырыми байтами JSON.
func (c *WeatherClient) Fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(c.cfg.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.cfg.Longitude, 'f', -1, 64))
	q.Set("current", c.cfg.Current)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch weather: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("fetch weather: response is not valid json")
	}

	return body, nil
}
