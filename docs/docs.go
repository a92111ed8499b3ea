// Package docs registra el documento OpenAPI de la API en swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/auth/login": {
			"post": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.LoginResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Iniciar sesión (dueño)",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "email, password",
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/api/auth/register": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.UserResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Registrar negocio",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Crea la cuenta dueña (tenant) y su sucursal principal.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "email, password, name, business_name",
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				]
			}
		},
		"/api/auth/staff/login": {
			"post": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.LoginResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Iniciar sesión (personal)",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "email, password",
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/api/branches": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BranchResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Crear sucursal",
				"tags": [
					"branches"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "datos de la sucursal",
						"schema": {
							"$ref": "#/definitions/dto.CreateBranchRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.BranchResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar sucursales",
				"tags": [
					"branches"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "include_inactive",
						"in": "query",
						"required": false,
						"description": "incluir sucursales inactivas",
						"type": "boolean"
					}
				]
			}
		},
		"/api/branches/dashboard": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BranchDashboardDTO"
										}
									}
								}
							]
						}
					}
				},
				"summary": "Dashboard de sucursales",
				"tags": [
					"dashboard"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"description": "Totales por sucursal: productos, valor de inventario, alertas y ventas de hoy."
			}
		},
		"/api/branches/{id}": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BranchResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Obtener sucursal",
				"tags": [
					"branches"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID de la sucursal",
						"type": "string"
					}
				]
			},
			"put": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.BranchResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Actualizar sucursal",
				"tags": [
					"branches"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID de la sucursal",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "campos a modificar",
						"schema": {
							"$ref": "#/definitions/dto.UpdateBranchRequest"
						}
					}
				]
			},
			"delete": {
				"responses": {
					"204": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Desactivar sucursal",
				"tags": [
					"branches"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID de la sucursal",
						"type": "string"
					}
				]
			}
		},
		"/api/debtors": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.DebtorResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Registrar deudor",
				"tags": [
					"debtors"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "nombre y monto adeudado",
						"schema": {
							"$ref": "#/definitions/dto.CreateDebtorRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.DebtorResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar deudores",
				"tags": [
					"debtors"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo (1-100)",
						"type": "integer"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"description": "desplazamiento",
						"type": "integer"
					}
				]
			}
		},
		"/api/debtors/{id}": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.DebtorResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Obtener deudor con sus abonos",
				"tags": [
					"debtors"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del deudor",
						"type": "string"
					}
				]
			}
		},
		"/api/debtors/{id}/payments": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.DebtorResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Registrar abono",
				"tags": [
					"debtors"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del deudor",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "monto y método",
						"schema": {
							"$ref": "#/definitions/dto.DebtorPaymentRequest"
						}
					}
				]
			}
		},
		"/api/expenses": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ExpenseResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Registrar gasto",
				"tags": [
					"expenses"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "categoría, monto y fecha",
						"schema": {
							"$ref": "#/definitions/dto.CreateExpenseRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.ExpenseResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar gastos",
				"tags": [
					"expenses"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "filtrar por sucursal",
						"type": "string"
					},
					{
						"name": "from",
						"in": "query",
						"required": false,
						"description": "desde (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "to",
						"in": "query",
						"required": false,
						"description": "hasta, inclusive (YYYY-MM-DD)",
						"type": "string"
					}
				]
			}
		},
		"/api/expenses/{id}": {
			"delete": {
				"responses": {
					"204": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Eliminar gasto",
				"tags": [
					"expenses"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del gasto",
						"type": "string"
					}
				]
			}
		},
		"/api/inventory/branches": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.BranchStockSummaryDTO"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Totales de inventario por sucursal",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/inventory/dashboard": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.InventoryDashboardDTO"
										}
									}
								}
							]
						}
					}
				},
				"summary": "Dashboard de inventario",
				"tags": [
					"dashboard"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"description": "Unidades, valor, alertas de stock, ventas del mes, movimientos recientes y top de productos."
			}
		},
		"/api/inventory/initialize": {
			"post": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.InitializeInventoryResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Inicializar inventario de una sucursal",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Crea una fila de stock por producto activo que aún no la tenga. Idempotente.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "sucursal y stock inicial",
						"schema": {
							"$ref": "#/definitions/dto.InitializeInventoryRequest"
						}
					}
				]
			}
		},
		"/api/inventory/movements": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.MovementResponse"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Bitácora de movimientos de stock",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "filtrar por sucursal",
						"type": "string"
					},
					{
						"name": "product_id",
						"in": "query",
						"required": false,
						"description": "filtrar por producto",
						"type": "string"
					},
					{
						"name": "type",
						"in": "query",
						"required": false,
						"description": "SALE, PURCHASE, ADJUSTMENT, TRANSFER_IN o TRANSFER_OUT",
						"type": "string"
					},
					{
						"name": "from",
						"in": "query",
						"required": false,
						"description": "desde (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "to",
						"in": "query",
						"required": false,
						"description": "hasta, inclusive (YYYY-MM-DD)",
						"type": "string"
					}
				]
			}
		},
		"/api/inventory/reasons": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.ReasonDTO"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Motivos de ajuste disponibles",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/inventory/replenishment": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.ReplenishmentSuggestionDTO"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Lista de reposición",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"description": "Productos en o bajo su mínimo con la cantidad sugerida de pedido, por prioridad.",
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "sucursal; vacío = todas",
						"type": "string"
					}
				]
			}
		},
		"/api/inventory/stock": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.StockLevelResponse"
											}
										}
									}
								}
							]
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Niveles de stock",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "filtrar por sucursal",
						"type": "string"
					},
					{
						"name": "product_id",
						"in": "query",
						"required": false,
						"description": "filtrar por producto",
						"type": "string"
					},
					{
						"name": "low_stock",
						"in": "query",
						"required": false,
						"description": "sólo en o bajo el mínimo",
						"type": "boolean"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo (1-100)",
						"type": "integer"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"description": "desplazamiento",
						"type": "integer"
					}
				]
			}
		},
		"/api/inventory/stock/adjust": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MovementResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Ajustar stock",
				"tags": [
					"inventory"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Aplica un delta con signo; el resultado no puede quedar negativo. El motivo es obligatorio.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "producto, sucursal, delta y motivo",
						"schema": {
							"$ref": "#/definitions/dto.AdjustStockRequest"
						}
					}
				]
			}
		},
		"/api/me": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProfileResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Perfil de la sesión",
				"tags": [
					"auth"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/products": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProductResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Crear producto",
				"tags": [
					"products"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Con quantity > 0 y branch_id registra el stock inicial como ajuste.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "datos del producto",
						"schema": {
							"$ref": "#/definitions/dto.CreateProductRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "object"
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar productos",
				"tags": [
					"products"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "filtrar por categoría",
						"type": "string"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "buscar por nombre o SKU",
						"type": "string"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo (1-100, por defecto 20)",
						"type": "integer"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"description": "desplazamiento",
						"type": "integer"
					}
				]
			}
		},
		"/api/products/{id}": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProductResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Obtener producto con su inventario por sucursal",
				"tags": [
					"products"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del producto",
						"type": "string"
					}
				]
			},
			"put": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProductResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Actualizar producto",
				"tags": [
					"products"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "El stock no se modifica aquí: cambia sólo por ventas, ajustes, compras y traslados.",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del producto",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "campos a modificar",
						"schema": {
							"$ref": "#/definitions/dto.UpdateProductRequest"
						}
					}
				]
			},
			"delete": {
				"responses": {
					"204": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Eliminar producto (lógico)",
				"tags": [
					"products"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del producto",
						"type": "string"
					}
				]
			}
		},
		"/api/reports/daily-summary": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.DailySummaryDTO"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Resumen diario",
				"tags": [
					"reports"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"description": "Ventas, utilidad, gastos y utilidad neta por día del rango (por defecto el mes en curso).",
				"parameters": [
					{
						"name": "from",
						"in": "query",
						"required": false,
						"description": "desde (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "to",
						"in": "query",
						"required": false,
						"description": "hasta, inclusive (YYYY-MM-DD)",
						"type": "string"
					}
				]
			}
		},
		"/api/reports/products": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProductReportDTO"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Ranking de productos por ingresos",
				"tags": [
					"reports"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"description": "Participación de cada producto en los ingresos del período; marca el grupo que acumula el 80%.",
				"parameters": [
					{
						"name": "start_date",
						"in": "query",
						"required": false,
						"description": "desde (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "end_date",
						"in": "query",
						"required": false,
						"description": "hasta, inclusive (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "top_n",
						"in": "query",
						"required": false,
						"description": "máximo de productos en el ranking",
						"type": "integer"
					}
				]
			}
		},
		"/api/sales": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SaleResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Registrar venta",
				"tags": [
					"sales"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Calcula subtotal, descuento, impuesto y utilidad y descuenta el stock de cada ítem en una sola transacción. Los faltantes de stock vuelven como warnings.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "sucursal, ítems, impuesto, descuento y pago",
						"schema": {
							"$ref": "#/definitions/dto.CreateSaleRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.SaleResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar ventas",
				"tags": [
					"sales"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "filtrar por sucursal",
						"type": "string"
					},
					{
						"name": "from",
						"in": "query",
						"required": false,
						"description": "desde (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "to",
						"in": "query",
						"required": false,
						"description": "hasta, inclusive (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "include_deleted",
						"in": "query",
						"required": false,
						"description": "incluir ventas anuladas",
						"type": "boolean"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo (1-100)",
						"type": "integer"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"description": "desplazamiento",
						"type": "integer"
					}
				]
			}
		},
		"/api/sales/migrate-legacy": {
			"post": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MigrationResult"
										}
									}
								}
							]
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Migrar ventas de un solo producto",
				"tags": [
					"sales"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"description": "Convierte las ventas legadas del negocio al modelo multi-ítem. Idempotente."
			}
		},
		"/api/sales/{id}": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SaleResponse"
										}
									}
								}
							]
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Obtener venta",
				"tags": [
					"sales"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID de la venta",
						"type": "string"
					}
				]
			},
			"delete": {
				"responses": {
					"204": {
						"description": "OK"
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Anular venta",
				"tags": [
					"sales"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"description": "Borrado lógico; el stock no se repone.",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID de la venta",
						"type": "string"
					}
				]
			}
		},
		"/api/sales/{id}/receipt": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Comprobante PDF de la venta",
				"tags": [
					"sales"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/pdf"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID de la venta",
						"type": "string"
					}
				]
			}
		},
		"/api/staff": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StaffResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Crear empleado",
				"tags": [
					"staff"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Sin módulos se aplican los permisos por defecto del rol.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "datos del empleado",
						"schema": {
							"$ref": "#/definitions/dto.CreateStaffRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.StaffResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar personal",
				"tags": [
					"staff"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "sólo el personal asignado a la sucursal",
						"type": "string"
					}
				]
			}
		},
		"/api/staff/{id}": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StaffResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Obtener empleado",
				"tags": [
					"staff"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del empleado",
						"type": "string"
					}
				]
			},
			"patch": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StaffResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Actualizar empleado",
				"tags": [
					"staff"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del empleado",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "campos a modificar",
						"schema": {
							"$ref": "#/definitions/dto.UpdateStaffRequest"
						}
					}
				]
			},
			"delete": {
				"responses": {
					"204": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Dar de baja empleado",
				"tags": [
					"staff"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del empleado",
						"type": "string"
					}
				]
			}
		},
		"/api/staff/{id}/activity": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.StaffActivityResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Bitácora del empleado",
				"tags": [
					"staff"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del empleado",
						"type": "string"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo de entradas (por defecto 50)",
						"type": "integer"
					}
				]
			}
		},
		"/api/suppliers": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SupplierResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Crear proveedor",
				"tags": [
					"suppliers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "datos del proveedor",
						"schema": {
							"$ref": "#/definitions/dto.CreateSupplierRequest"
						}
					}
				]
			},
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "object"
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar proveedores con su desempeño",
				"tags": [
					"suppliers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo (1-100, por defecto 20)",
						"type": "integer"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"description": "desplazamiento",
						"type": "integer"
					}
				]
			}
		},
		"/api/suppliers/dashboard": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SupplierDashboardDTO"
										}
									}
								}
							]
						}
					}
				},
				"summary": "Dashboard de proveedores",
				"tags": [
					"dashboard"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/suppliers/{id}": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SupplierResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Obtener proveedor",
				"tags": [
					"suppliers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del proveedor",
						"type": "string"
					}
				]
			},
			"put": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SupplierResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Actualizar proveedor",
				"tags": [
					"suppliers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del proveedor",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "campos a modificar",
						"schema": {
							"$ref": "#/definitions/dto.UpdateSupplierRequest"
						}
					}
				]
			}
		},
		"/api/suppliers/{id}/purchases": {
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SupplierOrderResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Recibir compra de un proveedor",
				"tags": [
					"suppliers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Suma stock en la sucursal, recalcula el costo promedio ponderado y registra la orden.",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "ID del proveedor",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "producto, sucursal, cantidad y costo unitario",
						"schema": {
							"$ref": "#/definitions/dto.PurchaseRequest"
						}
					}
				]
			}
		},
		"/api/transfers": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.TransferResponse"
											}
										}
									}
								}
							]
						}
					}
				},
				"summary": "Listar traslados",
				"tags": [
					"transfers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "branch_id",
						"in": "query",
						"required": false,
						"description": "traslados con la sucursal como origen o destino",
						"type": "string"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "máximo (1-100)",
						"type": "integer"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"description": "desplazamiento",
						"type": "integer"
					}
				]
			},
			"post": {
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.TransferResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"summary": "Trasladar stock entre sucursales",
				"tags": [
					"transfers"
				],
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"description": "Resta en origen y suma en destino en una sola transacción.",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "producto, origen, destino y cantidad",
						"schema": {
							"$ref": "#/definitions/dto.TransferRequest"
						}
					}
				]
			}
		},
		"/health": {
			"get": {
				"summary": "Estado del servicio",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Base de datos no disponible"
					}
				}
			}
		}
	},
	"definitions": {
		"dto.APIResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				},
				"error": {
					"$ref": "#/definitions/dto.ErrorResponse"
				}
			}
		},
		"dto.AdjustStockRequest": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"reason": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"product_id",
				"branch_id",
				"reason"
			]
		},
		"dto.BranchDashboardDTO": {
			"type": "object",
			"properties": {
				"total_branches": {
					"type": "integer"
				},
				"active_branches": {
					"type": "integer"
				},
				"inventory_value": {
					"type": "string",
					"example": "0"
				},
				"today_sales": {
					"type": "string",
					"example": "0"
				},
				"branches": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BranchDashboardItem"
					}
				}
			}
		},
		"dto.BranchDashboardItem": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.BranchResponse"
				},
				{
					"type": "object",
					"properties": {
						"total_products": {
							"type": "integer"
						},
						"inventory_value": {
							"type": "string",
							"example": "0"
						},
						"low_stock_count": {
							"type": "integer"
						},
						"out_of_stock_count": {
							"type": "integer"
						},
						"today_sales": {
							"type": "string",
							"example": "0"
						}
					}
				}
			]
		},
		"dto.BranchResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"opening_hours": {
					"type": "string"
				},
				"manager_id": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.BranchStockDTO": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"branch_name": {
					"type": "string"
				},
				"current_stock": {
					"type": "string",
					"example": "0"
				},
				"reserved_stock": {
					"type": "string",
					"example": "0"
				},
				"available_stock": {
					"type": "string",
					"example": "0"
				},
				"is_low_stock": {
					"type": "boolean"
				}
			}
		},
		"dto.BranchStockSummaryDTO": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"branch_name": {
					"type": "string"
				},
				"total_products": {
					"type": "integer"
				},
				"total_units": {
					"type": "string",
					"example": "0"
				},
				"inventory_value": {
					"type": "string",
					"example": "0"
				},
				"low_stock_count": {
					"type": "integer"
				},
				"out_of_stock_count": {
					"type": "integer"
				}
			}
		},
		"dto.CreateBranchRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"opening_hours": {
					"type": "string"
				},
				"manager_id": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.CreateDebtorRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"total_owed": {
					"type": "string",
					"example": "0"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.CreateExpenseRequest": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0"
				},
				"date": {
					"type": "string"
				}
			},
			"required": [
				"category"
			]
		},
		"dto.CreateProductRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"sku": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"cost_price": {
					"type": "string",
					"example": "0"
				},
				"selling_price": {
					"type": "string",
					"example": "0"
				},
				"min_stock_level": {
					"type": "string",
					"example": "0"
				},
				"unit": {
					"type": "string"
				},
				"suppliers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ProductSupplierDTO"
					}
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"branch_id": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.CreateSaleRequest": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.SaleItemRequest"
					}
				},
				"tax_rate": {
					"type": "string",
					"example": "0"
				},
				"discount_type": {
					"type": "string"
				},
				"discount_value": {
					"type": "string",
					"example": "0"
				},
				"payment_method": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"branch_id",
				"items",
				"payment_method"
			]
		},
		"dto.CreateStaffRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"modules": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"branch_ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			},
			"required": [
				"name",
				"email",
				"password",
				"role"
			]
		},
		"dto.CreateSupplierRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"contact_person": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"categories": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"rating": {
					"type": "string",
					"example": "0"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.DailySummaryDTO": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"sales_count": {
					"type": "integer"
				},
				"total_sales": {
					"type": "string",
					"example": "0"
				},
				"total_profit": {
					"type": "string",
					"example": "0"
				},
				"total_expenses": {
					"type": "string",
					"example": "0"
				},
				"net_profit": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"dto.DebtorPaymentRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "0"
				},
				"method": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"dto.DebtorPaymentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"debtor_id": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0"
				},
				"method": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.DebtorResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"total_owed": {
					"type": "string",
					"example": "0"
				},
				"total_paid": {
					"type": "string",
					"example": "0"
				},
				"balance": {
					"type": "string",
					"example": "0"
				},
				"notes": {
					"type": "string"
				},
				"payments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.DebtorPaymentResponse"
					}
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.ExpenseFilterRequest": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.PageRequest"
				},
				{
					"type": "object",
					"properties": {}
				}
			]
		},
		"dto.ExpenseResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0"
				},
				"date": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.InitializeInventoryRequest": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"default_stock": {
					"type": "string",
					"example": "0"
				}
			},
			"required": [
				"branch_id"
			]
		},
		"dto.InitializeInventoryResponse": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"created": {
					"type": "integer"
				},
				"skipped": {
					"type": "integer"
				}
			}
		},
		"dto.InventoryDashboardDTO": {
			"type": "object",
			"properties": {
				"total_products": {
					"type": "integer"
				},
				"total_units": {
					"type": "string",
					"example": "0"
				},
				"inventory_value": {
					"type": "string",
					"example": "0"
				},
				"low_stock_count": {
					"type": "integer"
				},
				"out_of_stock_count": {
					"type": "integer"
				},
				"monthly_sales": {
					"type": "string",
					"example": "0"
				},
				"monthly_profit": {
					"type": "string",
					"example": "0"
				},
				"low_stock_items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.StockLevelResponse"
					}
				},
				"recent_movements": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.MovementResponse"
					}
				},
				"top_products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TopProductDTO"
					}
				},
				"date_label": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"dto.LoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"staff": {
					"$ref": "#/definitions/dto.StaffResponse"
				}
			}
		},
		"dto.MigrationResult": {
			"type": "object",
			"properties": {
				"migrated": {
					"type": "integer"
				},
				"skipped": {
					"type": "integer"
				}
			}
		},
		"dto.MovementFilterRequest": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.PageRequest"
				},
				{
					"type": "object",
					"properties": {}
				}
			]
		},
		"dto.MovementResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"previous_stock": {
					"type": "string",
					"example": "0"
				},
				"new_stock": {
					"type": "string",
					"example": "0"
				},
				"reference_id": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.PageResponse": {
			"type": "object",
			"properties": {
				"limit": {
					"type": "integer"
				},
				"offset": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.PeriodDTO": {
			"type": "object",
			"properties": {
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				}
			}
		},
		"dto.ProductFilterRequest": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.PageRequest"
				},
				{
					"type": "object",
					"properties": {}
				}
			]
		},
		"dto.ProductInventoryDTO": {
			"type": "object",
			"properties": {
				"total_stock": {
					"type": "string",
					"example": "0"
				},
				"available_stock": {
					"type": "string",
					"example": "0"
				},
				"reserved_stock": {
					"type": "string",
					"example": "0"
				},
				"in_transit_stock": {
					"type": "string",
					"example": "0"
				},
				"branches": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BranchStockDTO"
					}
				},
				"low_stock_alert": {
					"type": "boolean"
				},
				"out_of_stock": {
					"type": "boolean"
				}
			}
		},
		"dto.ProductRankingDTO": {
			"type": "object",
			"properties": {
				"rank": {
					"type": "integer"
				},
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"units_sold": {
					"type": "string",
					"example": "0"
				},
				"revenue": {
					"type": "string",
					"example": "0"
				},
				"profit": {
					"type": "string",
					"example": "0"
				},
				"margin_pct": {
					"type": "string",
					"example": "0"
				},
				"revenue_pct": {
					"type": "string",
					"example": "0"
				},
				"cumulative_revenue_pct": {
					"type": "string",
					"example": "0"
				},
				"is_top_pareto": {
					"type": "boolean"
				}
			}
		},
		"dto.ProductReportDTO": {
			"type": "object",
			"properties": {
				"period": {
					"$ref": "#/definitions/dto.PeriodDTO"
				},
				"sales_count": {
					"type": "integer"
				},
				"total_revenue": {
					"type": "string",
					"example": "0"
				},
				"total_profit": {
					"type": "string",
					"example": "0"
				},
				"overall_margin_pct": {
					"type": "string",
					"example": "0"
				},
				"ranking": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ProductRankingDTO"
					}
				},
				"pareto_products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ProductRankingDTO"
					}
				}
			}
		},
		"dto.ProductResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"sku": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"cost_price": {
					"type": "string",
					"example": "0"
				},
				"selling_price": {
					"type": "string",
					"example": "0"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"min_stock_level": {
					"type": "string",
					"example": "0"
				},
				"unit": {
					"type": "string"
				},
				"suppliers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ProductSupplierDTO"
					}
				},
				"is_low_stock": {
					"type": "boolean"
				},
				"is_out_of_stock": {
					"type": "boolean"
				},
				"is_deleted": {
					"type": "boolean"
				},
				"inventory": {
					"$ref": "#/definitions/dto.ProductInventoryDTO"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.ProductSupplierDTO": {
			"type": "object",
			"properties": {
				"supplier_id": {
					"type": "string"
				},
				"supplier_name": {
					"type": "string"
				},
				"is_primary": {
					"type": "boolean"
				},
				"last_purchase_price": {
					"type": "string",
					"example": "0"
				},
				"average_purchase_price": {
					"type": "string",
					"example": "0"
				},
				"lead_time_days": {
					"type": "integer"
				},
				"minimum_order_quantity": {
					"type": "string",
					"example": "0"
				}
			},
			"required": [
				"supplier_id"
			]
		},
		"dto.ProfileResponse": {
			"type": "object",
			"properties": {
				"role": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"staff": {
					"$ref": "#/definitions/dto.StaffResponse"
				}
			}
		},
		"dto.PurchaseRequest": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"unit_cost": {
					"type": "string",
					"example": "0"
				},
				"expected_date": {
					"type": "string",
					"format": "date-time"
				},
				"rating": {
					"type": "string",
					"example": "0"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"product_id",
				"branch_id"
			]
		},
		"dto.ReasonDTO": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"label": {
					"type": "string"
				}
			}
		},
		"dto.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"business_name": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password",
				"name"
			]
		},
		"dto.ReplenishmentSuggestionDTO": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"sku": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"current_stock": {
					"type": "string",
					"example": "0"
				},
				"min_stock_level": {
					"type": "string",
					"example": "0"
				},
				"ideal_stock": {
					"type": "string",
					"example": "0"
				},
				"suggested_order_qty": {
					"type": "string",
					"example": "0"
				},
				"unit_cost": {
					"type": "string",
					"example": "0"
				},
				"estimated_order_cost": {
					"type": "string",
					"example": "0"
				},
				"units_sold_last_90d": {
					"type": "string",
					"example": "0"
				},
				"supplier_id": {
					"type": "string"
				},
				"supplier_name": {
					"type": "string"
				},
				"priority": {
					"type": "integer"
				}
			}
		},
		"dto.SaleFilterRequest": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.PageRequest"
				},
				{
					"type": "object",
					"properties": {}
				}
			]
		},
		"dto.SaleItemRequest": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"unit_price": {
					"type": "string",
					"example": "0"
				},
				"cost_price": {
					"type": "string",
					"example": "0"
				}
			},
			"required": [
				"product_id"
			]
		},
		"dto.SaleItemResponse": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"unit_price": {
					"type": "string",
					"example": "0"
				},
				"cost_price": {
					"type": "string",
					"example": "0"
				},
				"line_total": {
					"type": "string",
					"example": "0"
				},
				"profit": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"dto.SaleResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"sale_number": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"staff_id": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.SaleItemResponse"
					}
				},
				"subtotal": {
					"type": "string",
					"example": "0"
				},
				"tax_rate": {
					"type": "string",
					"example": "0"
				},
				"tax": {
					"type": "string",
					"example": "0"
				},
				"discount_type": {
					"type": "string"
				},
				"discount_value": {
					"type": "string",
					"example": "0"
				},
				"discount": {
					"type": "string",
					"example": "0"
				},
				"total": {
					"type": "string",
					"example": "0"
				},
				"total_profit": {
					"type": "string",
					"example": "0"
				},
				"payment_method": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				},
				"date": {
					"type": "string"
				},
				"is_deleted": {
					"type": "boolean"
				},
				"deleted_at": {
					"type": "string",
					"format": "date-time"
				},
				"warnings": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.StaffActivityResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"staff_id": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				},
				"action": {
					"type": "string"
				},
				"resource": {
					"type": "string"
				},
				"resource_id": {
					"type": "string"
				},
				"details": {
					"type": "object"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.StaffResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"permissions": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"modules": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"branch_ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"is_active": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.StockFilterRequest": {
			"allOf": [
				{
					"$ref": "#/definitions/dto.PageRequest"
				},
				{
					"type": "object",
					"properties": {}
				}
			]
		},
		"dto.StockLevelResponse": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"sku": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"branch_name": {
					"type": "string"
				},
				"current_stock": {
					"type": "string",
					"example": "0"
				},
				"reserved_stock": {
					"type": "string",
					"example": "0"
				},
				"available_stock": {
					"type": "string",
					"example": "0"
				},
				"min_stock_level": {
					"type": "string",
					"example": "0"
				},
				"is_low_stock": {
					"type": "boolean"
				},
				"is_out_of_stock": {
					"type": "boolean"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.SupplierDashboardDTO": {
			"type": "object",
			"properties": {
				"total_suppliers": {
					"type": "integer"
				},
				"active_suppliers": {
					"type": "integer"
				},
				"total_spent": {
					"type": "string",
					"example": "0"
				},
				"on_time_delivery_rate": {
					"type": "string",
					"example": "0"
				},
				"top_suppliers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.SupplierResponse"
					}
				}
			}
		},
		"dto.SupplierOrderResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"supplier_id": {
					"type": "string"
				},
				"product_id": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"unit_cost": {
					"type": "string",
					"example": "0"
				},
				"total": {
					"type": "string",
					"example": "0"
				},
				"expected_date": {
					"type": "string",
					"format": "date-time"
				},
				"received_at": {
					"type": "string",
					"format": "date-time"
				},
				"on_time": {
					"type": "boolean"
				},
				"rating": {
					"type": "string",
					"example": "0"
				},
				"created_by": {
					"type": "string"
				}
			}
		},
		"dto.SupplierPerformanceDTO": {
			"type": "object",
			"properties": {
				"total_orders": {
					"type": "integer"
				},
				"on_time_orders": {
					"type": "integer"
				},
				"on_time_delivery_rate": {
					"type": "string",
					"example": "0"
				},
				"average_rating": {
					"type": "string",
					"example": "0"
				},
				"total_spent": {
					"type": "string",
					"example": "0"
				},
				"last_order_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.SupplierResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"contact_person": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"categories": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"rating": {
					"type": "string",
					"example": "0"
				},
				"is_active": {
					"type": "boolean"
				},
				"performance": {
					"$ref": "#/definitions/dto.SupplierPerformanceDTO"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.TopProductDTO": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"quantity_sold": {
					"type": "string",
					"example": "0"
				},
				"total_revenue": {
					"type": "string",
					"example": "0"
				},
				"margin_percentage": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"dto.TransferRequest": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "string"
				},
				"from_branch_id": {
					"type": "string"
				},
				"to_branch_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"product_id",
				"from_branch_id",
				"to_branch_id"
			]
		},
		"dto.TransferResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"transfer_number": {
					"type": "string"
				},
				"product_id": {
					"type": "string"
				},
				"product_name": {
					"type": "string"
				},
				"from_branch_id": {
					"type": "string"
				},
				"from_branch_name": {
					"type": "string"
				},
				"to_branch_id": {
					"type": "string"
				},
				"to_branch_name": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "0"
				},
				"notes": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.UpdateBranchRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"opening_hours": {
					"type": "string"
				},
				"manager_id": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.UpdateProductRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"sku": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"cost_price": {
					"type": "string",
					"example": "0"
				},
				"selling_price": {
					"type": "string",
					"example": "0"
				},
				"min_stock_level": {
					"type": "string",
					"example": "0"
				},
				"unit": {
					"type": "string"
				},
				"suppliers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ProductSupplierDTO"
					}
				}
			}
		},
		"dto.UpdateStaffRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"modules": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"branch_ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.UpdateSupplierRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"contact_person": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"categories": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"rating": {
					"type": "string",
					"example": "0"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.UserResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"business_name": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		}
	},
	"securityDefinitions": {
		"Bearer": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header",
			"description": "Bearer <token>"
		}
	}
}`

// SwaggerInfo contiene la información exportada del documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Inventario POS API",
	Description:      "API multi-tenant de inventario por sucursal, ventas y personal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
