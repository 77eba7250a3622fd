package openweather

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"trip_planner/internal/adapters/httpc"
	"trip_planner/internal/domain"
)

const defaultBase = "https://api.openweathermap.org/data/2.5"

type Client struct {
	c    *httpc.Client
	base string
	key  string
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if base == "" {
		base = defaultBase
	}
	return &Client{c: httpc.New("openweather", rps), base: base, key: key}, nil
}

type currentResp struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
}

func (c *Client) Current(ctx context.Context, city string) (domain.WeatherReport, error) {
	u := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s", c.base, url.QueryEscape(city), c.key)
	var out currentResp
	if err := c.c.GetJSON(ctx, "weather", u, nil, &out); err != nil {
		return domain.WeatherReport{}, err
	}

	w := domain.WeatherReport{
		Temperature: int(math.Round(out.Main.Temp)),
		FeelsLike:   int(math.Round(out.Main.FeelsLike)),
		Humidity:    out.Main.Humidity,
		WindSpeed:   int(math.Round(out.Wind.Speed * 3.6)), // m/s -> km/h
	}
	if len(out.Weather) > 0 {
		w.Description = out.Weather[0].Description
		w.Icon = out.Weather[0].Icon
	}
	return w, nil
}

type forecastResp struct {
	List []struct {
		DtTxt string `json:"dt_txt"` // "2026-08-29 12:00:00"
		Main  struct {
			TempMax float64 `json:"temp_max"`
			TempMin float64 `json:"temp_min"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast condenses the provider's 3-hourly list into one entry per
// calendar day, up to days entries.
func (c *Client) Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
	u := fmt.Sprintf("%s/forecast?q=%s&units=metric&appid=%s", c.base, url.QueryEscape(city), c.key)
	var out forecastResp
	if err := c.c.GetJSON(ctx, "forecast", u, nil, &out); err != nil {
		return nil, err
	}

	byDate := map[string]*domain.ForecastDay{}
	var order []string
	for _, e := range out.List {
		if len(e.DtTxt) < 10 {
			continue
		}
		date := e.DtTxt[:10]
		fd, ok := byDate[date]
		if !ok {
			fd = &domain.ForecastDay{Date: date, High: int(math.Round(e.Main.TempMax)), Low: int(math.Round(e.Main.TempMin))}
			if len(e.Weather) > 0 {
				fd.Description = e.Weather[0].Description
			}
			byDate[date] = fd
			order = append(order, date)
			continue
		}
		if hi := int(math.Round(e.Main.TempMax)); hi > fd.High {
			fd.High = hi
		}
		if lo := int(math.Round(e.Main.TempMin)); lo < fd.Low {
			fd.Low = lo
		}
	}

	res := make([]domain.ForecastDay, 0, days)
	for _, date := range order {
		if len(res) == days {
			break
		}
		res = append(res, *byDate[date])
	}
	return res, nil
}
