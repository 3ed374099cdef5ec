package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aokimidori/kakigori-pos/utils"
)

// JMA codes for the Tokyo region. 130000 selects the prefecture feed,
// 130010 the Tokyo-proper area inside each time series.
const (
	tokyoAreaCode      = "130010"
	defaultForecastURL = "https://www.jma.go.jp/bosai/forecast/data/forecast/130000.json"
)

// Defaults are the stand's event weekend.
const (
	defaultEventDate1 = "2025-09-13"
	defaultEventDate2 = "2025-09-14"
)

type WeatherController struct {
	Client *http.Client
	URL    string
	Dates  [2]string
}

func NewWeatherController() *WeatherController {
	url := os.Getenv("WEATHER_FORECAST_URL")
	if url == "" {
		url = defaultForecastURL
	}
	date1 := os.Getenv("EVENT_DATE_1")
	if date1 == "" {
		date1 = defaultEventDate1
	}
	date2 := os.Getenv("EVENT_DATE_2")
	if date2 == "" {
		date2 = defaultEventDate2
	}

	return &WeatherController{
		Client: &http.Client{Timeout: 10 * time.Second},
		URL:    url,
		Dates:  [2]string{date1, date2},
	}
}

// Mirrors the slice of the JMA feed this proxy actually reads.
type jmaArea struct {
	Area struct {
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"area"`
	WeatherCodes []string `json:"weatherCodes"`
	Weathers     []string `json:"weathers"`
	Pops         []string `json:"pops"`
	TempsMin     []string `json:"tempsMin"`
	TempsMax     []string `json:"tempsMax"`
}

type jmaTimeSeries struct {
	TimeDefines []string  `json:"timeDefines"`
	Areas       []jmaArea `json:"areas"`
}

type jmaForecast struct {
	PublishingOffice string          `json:"publishingOffice"`
	ReportDatetime   string          `json:"reportDatetime"`
	TimeSeries       []jmaTimeSeries `json:"timeSeries"`
}

type TemperatureRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// WeatherDay is the reshaped forecast for one event date.
type WeatherDay struct {
	Date                     string            `json:"date"`
	DateLabel                string            `json:"dateLabel"`
	Weather                  string            `json:"weather"`
	WeatherCode              string            `json:"weatherCode,omitempty"`
	Temperature              *TemperatureRange `json:"temperature,omitempty"`
	PrecipitationProbability []string          `json:"precipitationProbability,omitempty"`
}

// GetForecast -> fetch the JMA feed and reshape it for the two event dates.
// Upstream failures surface as 502, nothing is retried.
func (wc *WeatherController) GetForecast(c *gin.Context) {
	resp, err := wc.Client.Get(wc.URL)
	if err != nil {
		utils.ErrorLogger.Printf("Weather feed unreachable: %v", err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("failed to fetch weather data"))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.ErrorLogger.Printf("Weather feed returned %d", resp.StatusCode)
		utils.RespondError(c, http.StatusBadGateway, errors.New("failed to fetch weather data"))
		return
	}

	var feed []jmaForecast
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		utils.ErrorLogger.Printf("Weather feed malformed: %v", err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("failed to fetch weather data"))
		return
	}

	c.JSON(http.StatusOK, wc.reshape(feed))
}

// reshape walks every forecast block: the first time series carries the
// weather text, the second the precipitation probabilities (four six-hour
// slots per day), the third the min/max temperatures.
func (wc *WeatherController) reshape(feed []jmaForecast) []WeatherDay {
	days := make([]WeatherDay, 0, 2)

	find := func(date string) *WeatherDay {
		for i := range days {
			if days[i].Date == date {
				return &days[i]
			}
		}
		return nil
	}

	for _, forecast := range feed {
		if len(forecast.TimeSeries) == 0 {
			continue
		}

		if area := tokyoArea(forecast.TimeSeries[0].Areas); area != nil {
			for i, def := range forecast.TimeSeries[0].TimeDefines {
				date := dateOf(def)
				if !wc.isEventDate(date) || find(date) != nil {
					continue
				}
				day := WeatherDay{
					Date:      date,
					DateLabel: dateLabel(date),
					Weather:   "不明",
				}
				if i < len(area.Weathers) {
					// JMA pads the text with full-width spaces
					day.Weather = strings.Join(strings.Fields(area.Weathers[i]), "")
				}
				if i < len(area.WeatherCodes) {
					day.WeatherCode = area.WeatherCodes[i]
				}
				days = append(days, day)
			}
		}

		if len(forecast.TimeSeries) > 1 {
			if area := tokyoArea(forecast.TimeSeries[1].Areas); area != nil {
				for i, def := range forecast.TimeSeries[1].TimeDefines {
					date := dateOf(def)
					day := find(date)
					if day == nil || !wc.isEventDate(date) {
						continue
					}
					if lo := i * 4; lo < len(area.Pops) {
						hi := lo + 4
						if hi > len(area.Pops) {
							hi = len(area.Pops)
						}
						day.PrecipitationProbability = area.Pops[lo:hi]
					}
				}
			}
		}

		if len(forecast.TimeSeries) > 2 {
			if area := tokyoArea(forecast.TimeSeries[2].Areas); area != nil {
				for i, def := range forecast.TimeSeries[2].TimeDefines {
					date := dateOf(def)
					day := find(date)
					if day == nil || !wc.isEventDate(date) {
						continue
					}
					tr := &TemperatureRange{Min: "---", Max: "---"}
					if i < len(area.TempsMin) && area.TempsMin[i] != "" {
						tr.Min = area.TempsMin[i]
					}
					if i < len(area.TempsMax) && area.TempsMax[i] != "" {
						tr.Max = area.TempsMax[i]
					}
					day.Temperature = tr
				}
			}
		}
	}

	// Feed has nothing for the event dates yet, show placeholders.
	if len(days) == 0 {
		for _, date := range wc.Dates {
			days = append(days, WeatherDay{
				Date:        date,
				DateLabel:   dateLabel(date),
				Weather:     "予報データがまだありません",
				Temperature: &TemperatureRange{Min: "---", Max: "---"},
			})
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

func (wc *WeatherController) isEventDate(date string) bool {
	return date == wc.Dates[0] || date == wc.Dates[1]
}

func tokyoArea(areas []jmaArea) *jmaArea {
	for i := range areas {
		if areas[i].Area.Code == tokyoAreaCode {
			return &areas[i]
		}
	}
	return nil
}

func dateOf(timeDefine string) string {
	return strings.SplitN(timeDefine, "T", 2)[0]
}

var jaWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// dateLabel renders "2025-09-13" as 9月13日（土）.
func dateLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d月%d日（%s）", int(t.Month()), t.Day(), jaWeekdays[t.Weekday()])
}
