package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type openAPI struct {
	Swagger string                    `json:"swagger"`
	Info    map[string]any            `json:"info"`
	Paths   map[string]map[string]any `json:"paths"`
}

func TestReadDoc_RegistradoYValido(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc openAPI
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "el template debe producir JSON válido")
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Inventario POS API", doc.Info["title"])

	for path, method := range map[string]string{
		"/api/auth/login":             "post",
		"/api/sales":                  "post",
		"/api/inventory/stock/adjust": "post",
		"/api/transfers":              "post",
		"/api/branches/dashboard":     "get",
		"/api/sales/{id}/receipt":     "get",
	} {
		require.Contains(t, doc.Paths, path)
		assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
	}
}

// El documento registrado y el archivo servido en /docs deben listar las mismas rutas.
func TestReadDoc_CoincideConSwaggerJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var registered openAPI
	require.NoError(t, json.Unmarshal([]byte(raw), &registered))

	data, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var file openAPI
	require.NoError(t, json.Unmarshal(data, &file))

	assert.Len(t, registered.Paths, len(file.Paths))
	for path, ops := range file.Paths {
		require.Contains(t, registered.Paths, path)
		for method := range ops {
			assert.Contains(t, registered.Paths[path], method)
		}
	}
}
