package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOptionalValues(t *testing.T) {
	doc := gjson.Parse(`{"n":1.5,"i":42,"s":"0.0001","bad":"abc","null":null,"str":"BTC","obj":{}}`)

	require.NotNil(t, OptFloat(doc.Get("n")))
	assert.Equal(t, 1.5, *OptFloat(doc.Get("n")))
	assert.Equal(t, 0.0001, *OptFloat(doc.Get("s")))
	assert.Nil(t, OptFloat(doc.Get("bad")))
	assert.Nil(t, OptFloat(doc.Get("null")))
	assert.Nil(t, OptFloat(doc.Get("missing")))
	assert.Nil(t, OptFloat(doc.Get("obj")))

	assert.Equal(t, int64(42), *OptInt(doc.Get("i")))
	assert.Nil(t, OptInt(doc.Get("missing")))

	assert.Equal(t, "BTC", *OptString(doc.Get("str")))
	assert.Nil(t, OptString(doc.Get("null")))

	assert.Equal(t, `"0.0001"`, string(RawValue(doc.Get("s"))))
	assert.Nil(t, RawValue(doc.Get("missing")))
}
