package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a bare gin engine that tests mount handlers on
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{
		Router: gin.New(),
	}
}

// MakeRequest sends body as JSON (when non-nil) to the router
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest plus extra request headers. The request
// host is example.com.
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// ErrorBody mirrors the API's error envelope
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// AssertErrorResponse asserts the status and that the error message contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) ErrorBody {
	t.Helper()
	var body ErrorBody
	AssertJSONResponse(t, recorder, expectedStatus, &body)

	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
	return body
}

// AssertFieldError asserts a 400 that names the offending request field
func AssertFieldError(t *testing.T, recorder *httptest.ResponseRecorder, field string) ErrorBody {
	t.Helper()
	body := AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	assert.Equal(t, field, body.Field)
	assert.NotEmpty(t, body.Error)
	return body
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

// HTTPTestCase is one row of a table-driven handler test
type HTTPTestCase struct {
	Name    string
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
	// Setup registers mock expectations before the request is sent
	Setup          func()
	ExpectedStatus int
	// ExpectedBody, when set, must match the response as JSON
	ExpectedBody interface{}
}

// RunHTTPTestCases runs each case as a subtest
func (suite *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}

			recorder := suite.MakeRequestWithHeaders(tc.Method, tc.URL, tc.Body, tc.Headers)
			assert.Equal(t, tc.ExpectedStatus, recorder.Code)

			if tc.ExpectedBody != nil {
				expectedJSON, err := json.Marshal(tc.ExpectedBody)
				require.NoError(t, err)
				assert.JSONEq(t, string(expectedJSON), recorder.Body.String())
			}
		})
	}
}
