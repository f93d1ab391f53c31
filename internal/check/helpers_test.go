package check_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/check"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

const mascaraJSON = `{
	"id": 1,
	"title": "Essence Mascara Lash Princess",
	"description": "The Essence Mascara Lash Princess is a popular mascara known for its volumizing and lengthening effects.",
	"category": "beauty",
	"price": 9.99,
	"discountPercentage": 7.17,
	"rating": 4.94,
	"stock": 5,
	"tags": ["beauty", "mascara"],
	"brand": "Essence",
	"sku": "RCH45Q1A",
	"weight": 2,
	"dimensions": {"width": 23.17, "height": 14.43, "depth": 28.01},
	"reviews": [{"rating": 2, "comment": "Very unhappy with my purchase!", "date": "2024-05-23T08:56:21.618Z", "reviewerName": "John Doe", "reviewerEmail": "john.doe@x.dummyjson.com"}],
	"meta": {"createdAt": "2024-05-23T08:56:21.618Z", "updatedAt": "2024-05-23T08:56:21.618Z", "barcode": "9164035109868", "qrCode": "https://assets.dummyjson.com/public/qr-code.png"},
	"images": ["https://cdn.dummyjson.com/products/images/beauty/Essence%20Mascara%20Lash%20Princess/1.png"],
	"thumbnail": "https://cdn.dummyjson.com/products/images/beauty/Essence%20Mascara%20Lash%20Princess/thumbnail.png"
}`

const applesJSON = `{
	"id": 16,
	"title": "Apple",
	"description": "Fresh and crisp apples, perfect for snacking or incorporating into various recipes.",
	"category": "groceries",
	"price": 1.99,
	"discountPercentage": 1.97,
	"rating": 2.96,
	"stock": 9,
	"tags": ["fruits"],
	"reviews": [],
	"meta": {"createdAt": "2024-05-23T08:56:21.620Z", "updatedAt": "2024-05-23T08:56:21.620Z", "barcode": "1934241920520", "qrCode": "https://assets.dummyjson.com/public/qr-code.png"},
	"images": ["https://cdn.dummyjson.com/products/images/groceries/Apple/1.png"],
	"thumbnail": "https://cdn.dummyjson.com/products/images/groceries/Apple/thumbnail.png"
}`

func newResponse(status int, body string) model.Response {
	return model.Response{
		Status:   status,
		Duration: 120 * time.Millisecond,
		Headers:  http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:     []byte(body),
	}
}

func mustObject(t *testing.T, body string) check.Object {
	t.Helper()
	o, err := check.DecodeObject([]byte(body))
	require.NoError(t, err)
	return o
}

// withField returns body with key set to the raw JSON value, or removed when
// value is empty.
func withField(t *testing.T, body, key, value string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	if value == "" {
		delete(m, key)
	} else {
		m[key] = json.RawMessage(value)
	}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func mustProduct(t *testing.T, body string) model.Product {
	t.Helper()
	var p model.Product
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}
