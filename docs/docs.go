// Package docs содержит OpenAPI-описание API дашборда для swaggo/fiber-swagger.
// Обновлять вместе с аннотациями обработчиков (swag init -g cmd/api/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/v1/health": {
			"get": {
				"tags": [
					"System"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/regions": {
			"get": {
				"tags": [
					"Regions"
				],
				"summary": "List regions",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/regions/bounds": {
			"get": {
				"tags": [
					"Regions"
				],
				"summary": "Overall bounds",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/regions/{id}": {
			"get": {
				"tags": [
					"Regions"
				],
				"summary": "Get region",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/regions/{id}/focus": {
			"get": {
				"tags": [
					"Regions"
				],
				"summary": "Region focus bounds",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/regions/{id}/datasets/factors": {
			"get": {
				"tags": [
					"Analytics"
				],
				"summary": "Risk factor dataset",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/regions/{id}/datasets/historical": {
			"get": {
				"tags": [
					"Analytics"
				],
				"summary": "Historical risk dataset",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/regions/{id}/summary": {
			"get": {
				"tags": [
					"Analytics"
				],
				"summary": "Region summary",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/regions/{id}/overlay.svg": {
			"get": {
				"tags": [
					"Render"
				],
				"summary": "Region overlay preview",
				"produces": [
					"image/svg+xml"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Visible risk levels, comma separated",
						"name": "risk",
						"in": "query"
					}
				]
			}
		},
		"/api/v1/regions/{id}/charts/factors.svg": {
			"get": {
				"tags": [
					"Render"
				],
				"summary": "Risk factor bar chart",
				"produces": [
					"image/svg+xml"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/regions/{id}/charts/historical.svg": {
			"get": {
				"tags": [
					"Render"
				],
				"summary": "Historical risk line chart",
				"produces": [
					"image/svg+xml"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Region ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/overlay": {
			"get": {
				"tags": [
					"Map"
				],
				"summary": "Risk overlay",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Selected region ID",
						"name": "selected",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Visible risk levels, comma separated",
						"name": "risk",
						"in": "query"
					}
				]
			}
		},
		"/api/v1/risk-levels": {
			"get": {
				"tags": [
					"Map"
				],
				"summary": "Risk level legend",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/hotspots": {
			"get": {
				"tags": [
					"Map"
				],
				"summary": "Globe hotspots",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/sessions": {
			"post": {
				"tags": [
					"Sessions"
				],
				"summary": "Create dashboard session",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				}
			}
		},
		"/api/v1/sessions/{id}": {
			"get": {
				"tags": [
					"Sessions"
				],
				"summary": "Get session snapshot",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"Sessions"
				],
				"summary": "End session",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/sessions/{id}/view": {
			"put": {
				"tags": [
					"Sessions"
				],
				"summary": "Select active view",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SelectViewRequest"
						}
					}
				]
			}
		},
		"/api/v1/sessions/{id}/region": {
			"put": {
				"tags": [
					"Sessions"
				],
				"summary": "Select region",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SelectRegionRequest"
						}
					}
				]
			}
		},
		"/api/v1/sessions/{id}/legend": {
			"put": {
				"tags": [
					"Sessions"
				],
				"summary": "Set or toggle legend visibility",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request",
						"name": "request",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/dto.LegendRequest"
						}
					}
				]
			}
		},
		"/api/v1/sessions/{id}/filter": {
			"put": {
				"tags": [
					"Sessions"
				],
				"summary": "Set visible risk levels",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RiskFilterRequest"
						}
					}
				]
			}
		},
		"/api/v1/sessions/{id}/layer": {
			"put": {
				"tags": [
					"Sessions"
				],
				"summary": "Set map base layer",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BaseLayerRequest"
						}
					}
				]
			}
		},
		"/api/v1/sessions/{id}/analyses": {
			"post": {
				"tags": [
					"Sessions"
				],
				"summary": "Generate analysis",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"get": {
				"tags": [
					"Sessions"
				],
				"summary": "List analyses",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Session ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/stats": {
			"get": {
				"tags": [
					"Statistics"
				],
				"summary": "Get catalog statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	},
	"definitions": {
		"dto.SelectViewRequest": {
			"type": "object",
			"required": [
				"view"
			],
			"properties": {
				"view": {
					"type": "string",
					"enum": [
						"map",
						"analytics",
						"settings"
					]
				}
			}
		},
		"dto.SelectRegionRequest": {
			"type": "object",
			"required": [
				"region_id"
			],
			"properties": {
				"region_id": {
					"type": "string"
				}
			}
		},
		"dto.LegendRequest": {
			"type": "object",
			"properties": {
				"visible": {
					"type": "boolean"
				}
			}
		},
		"dto.RiskFilterRequest": {
			"type": "object",
			"required": [
				"levels"
			],
			"properties": {
				"levels": {
					"type": "array",
					"items": {
						"type": "string",
						"enum": [
							"high",
							"medium",
							"low"
						]
					}
				}
			}
		},
		"dto.BaseLayerRequest": {
			"type": "object",
			"required": [
				"layer"
			],
			"properties": {
				"layer": {
					"type": "string",
					"enum": [
						"street",
						"satellite",
						"terrain"
					]
				}
			}
		},
		"errors.AppError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": true
				}
			}
		},
		"utils.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/errors.AppError"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Landslide Risk Dashboard API",
	Description:      "API дашборда оползневого риска: каталог регионов, зоны риска для карты, наборы данных графиков и состояние сессий.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
