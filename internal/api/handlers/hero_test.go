package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type HeroResponse struct {
	ID         any            `json:"id"`
	Name       string         `json:"name"`
	Image      string         `json:"image"`
	Powerstats map[string]any `json:"powerstats"`
}

type CategoryResponse struct {
	Name     string `json:"name"`
	Winner   any    `json:"winner"`
	ID1Value any    `json:"id1_value"`
	ID2Value any    `json:"id2_value"`
}

type CompareResponse struct {
	ID1           any                `json:"id1"`
	ID2           any                `json:"id2"`
	Categories    []CategoryResponse `json:"categories"`
	OverallWinner any                `json:"overall_winner"`
}

func TestHeroHandler_Welcome(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BaseURL() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Save the World!", string(body))
}

func TestHeroHandler_Health(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BaseURL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
}

func TestHeroHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t)

	for _, path := range []string{"/superheroes", "/superheroes/"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL(path))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var result []HeroResponse
			testutil.AssertJSONResponse(t, resp, &result)
			require.Len(t, result, 3)
			for _, hero := range result {
				assert.NotNil(t, hero.ID)
				assert.NotEmpty(t, hero.Name)
				assert.NotEmpty(t, hero.Image)
				assert.Len(t, hero.Powerstats, 6)
			}
			// Numeric ids stay numeric on the wire
			assert.Equal(t, float64(1), result[0].ID)
		})
	}
}

func TestHeroHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "existing hero",
			id:             "1",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result HeroResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, float64(1), result.ID)
				assert.Equal(t, "A-Bomb", result.Name)
			},
		},
		{
			name:           "non-existent hero",
			id:             "9999",
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Superhero not found")
			},
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/superheroes/" + tt.id))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestHeroHandler_GetPowerstats(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/superheroes/2/powerstats"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stats map[string]float64
	testutil.AssertJSONResponse(t, resp, &stats)
	assert.Equal(t, map[string]float64{
		"intelligence": 100,
		"strength":     18,
		"speed":        23,
		"durability":   28,
		"power":        32,
		"combat":       32,
	}, stats)

	for _, id := range []string{"9999", "xyz"} {
		resp, err := http.Get(ts.APIURL("/superheroes/" + id + "/powerstats"))
		require.NoError(t, err)
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Superhero not found")
		resp.Body.Close()
	}
}

func TestHeroHandler_Compare(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/superheroes/compare?id1=1&id2=3"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var result CompareResponse
	testutil.AssertJSONResponse(t, resp, &result)

	assert.Equal(t, float64(1), result.ID1)
	assert.Equal(t, float64(3), result.ID2)
	require.Len(t, result.Categories, 6)

	ordered := []string{"intelligence", "strength", "speed", "durability", "power", "combat"}
	winners := []any{float64(3), float64(1), float64(3), float64(1), float64(3), float64(3)}
	for i, c := range result.Categories {
		assert.Equal(t, ordered[i], c.Name)
		assert.Equal(t, winners[i], c.Winner, "category %s", c.Name)
	}
	assert.Equal(t, float64(38), result.Categories[0].ID1Value)
	assert.Equal(t, float64(50), result.Categories[0].ID2Value)
	assert.Equal(t, float64(3), result.OverallWinner)
}

func TestHeroHandler_CompareTie(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/superheroes/compare?id1=1&id2=2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result CompareResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, "tie", result.OverallWinner)
}

func TestHeroHandler_CompareNonNumericStat(t *testing.T) {
	ts := testutil.NewTestServer(t,
		testutil.NewHeroBuilder().WithID("1").WithStat(domain.CategoryIntelligence, domain.RawStat(`"n/a"`)).Build(),
		testutil.NewHeroBuilder().WithID("2").Build(),
	)

	resp, err := http.Get(ts.APIURL("/superheroes/compare?id1=1&id2=2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result CompareResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Nil(t, result.Categories[0].ID1Value)
	assert.Equal(t, "tie", result.Categories[0].Winner)
	assert.Equal(t, "tie", result.OverallWinner)
}

func TestHeroHandler_CompareErrors(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing id2",
			query:          "?id1=1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Both id1 and id2 query parameters are required",
		},
		{
			name:           "missing both",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Both id1 and id2 query parameters are required",
		},
		{
			name:           "identical ids",
			query:          "?id1=1&id2=1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "id1 and id2 must be different",
		},
		{
			name:           "one id not found",
			query:          "?id1=1&id2=9999",
			expectedStatus: http.StatusNotFound,
			expectedError:  "One or both superheroes not found",
		},
		{
			name:           "both not found",
			query:          "?id1=9998&id2=9999",
			expectedStatus: http.StatusNotFound,
			expectedError:  "One or both superheroes not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/superheroes/compare" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			testutil.AssertJSONError(t, resp, tt.expectedStatus, tt.expectedError)
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	ts := testutil.NewTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.APIURL("/superheroes"), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
