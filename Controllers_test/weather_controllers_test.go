package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aokimidori/kakigori-pos/controllers"
)

const jmaStub = `[
  {
    "publishingOffice": "気象庁",
    "reportDatetime": "2025-09-12T17:00:00+09:00",
    "timeSeries": [
      {
        "timeDefines": ["2025-09-13T00:00:00+09:00", "2025-09-14T00:00:00+09:00"],
        "areas": [
          {
            "area": {"name": "東京地方", "code": "130010"},
            "weatherCodes": ["101", "200"],
            "weathers": ["晴れ　時々　くもり", "くもり"]
          }
        ]
      },
      {
        "timeDefines": ["2025-09-13T00:00:00+09:00", "2025-09-14T00:00:00+09:00"],
        "areas": [
          {
            "area": {"name": "東京地方", "code": "130010"},
            "pops": ["10", "20", "30", "40", "0", "10", "20", "30"]
          }
        ]
      },
      {
        "timeDefines": ["2025-09-13T00:00:00+09:00", "2025-09-14T00:00:00+09:00"],
        "areas": [
          {
            "area": {"name": "東京地方", "code": "130010"},
            "tempsMin": ["22", "23"],
            "tempsMax": ["30", "31"]
          }
        ]
      }
    ]
  }
]`

func setupWeatherRouter(wc *controllers.WeatherController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/weather", wc.GetForecast)
	return router
}

func stubController(upstreamURL string) *controllers.WeatherController {
	return &controllers.WeatherController{
		Client: &http.Client{Timeout: time.Second},
		URL:    upstreamURL,
		Dates:  [2]string{"2025-09-13", "2025-09-14"},
	}
}

func TestGetForecastReshapesFeed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(jmaStub))
	}))
	defer upstream.Close()

	router := setupWeatherRouter(stubController(upstream.URL))

	w := doJSON(t, router, "GET", "/weather", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var days []controllers.WeatherDay
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	assert.Len(t, days, 2)

	saturday := days[0]
	assert.Equal(t, "2025-09-13", saturday.Date)
	assert.Equal(t, "9月13日（土）", saturday.DateLabel)
	assert.Equal(t, "晴れ時々くもり", saturday.Weather, "full-width padding must be stripped")
	assert.Equal(t, "101", saturday.WeatherCode)
	if assert.NotNil(t, saturday.Temperature) {
		assert.Equal(t, "22", saturday.Temperature.Min)
		assert.Equal(t, "30", saturday.Temperature.Max)
	}
	assert.Equal(t, []string{"10", "20", "30", "40"}, saturday.PrecipitationProbability)

	sunday := days[1]
	assert.Equal(t, "2025-09-14", sunday.Date)
	assert.Equal(t, "9月14日（日）", sunday.DateLabel)
	assert.Equal(t, []string{"0", "10", "20", "30"}, sunday.PrecipitationProbability)
}

func TestGetForecastPlaceholdersWhenFeedHasNoEventDates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	router := setupWeatherRouter(stubController(upstream.URL))

	w := doJSON(t, router, "GET", "/weather", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var days []controllers.WeatherDay
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	assert.Len(t, days, 2)
	assert.Equal(t, "予報データがまだありません", days[0].Weather)
	if assert.NotNil(t, days[0].Temperature) {
		assert.Equal(t, "---", days[0].Temperature.Min)
	}
}

func TestGetForecastUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := setupWeatherRouter(stubController(upstream.URL))

	w := doJSON(t, router, "GET", "/weather", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetForecastUpstreamUnreachable(t *testing.T) {
	// Closed immediately, nothing listens at this address anymore.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	router := setupWeatherRouter(stubController(url))

	w := doJSON(t, router, "GET", "/weather", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
