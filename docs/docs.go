// Package docs registers the Swagger 2.0 document served under /swagger.
// The document follows the swag annotations in cmd/app and
// internal/handler. Running
//
//	swag init -g cmd/app/main.go -o docs --outputTypes go
//
// replaces this file with the generated equivalent. Keep the paths in step
// with the router; server tests compare them.
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
		"/api/v1/brew": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"potions"
				],
				"summary": "Brew a potion",
				"description": "Combine ingredients; potion is null when they share no effect",
				"parameters": [
					{
						"type": "string",
						"description": "Comma separated ingredient names",
						"name": "ingredients",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.BrewResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ValidationErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/dataset": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"dataset"
				],
				"summary": "Dataset index",
				"description": "Version, checksum and size of the loaded dataset",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/report.Index"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/effects": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"effects"
				],
				"summary": "List effects",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/report.EffectRow"
											}
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/effects/{name}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"effects"
				],
				"summary": "Get effect",
				"parameters": [
					{
						"type": "string",
						"description": "Effect name (case-insensitive)",
						"name": "name",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/report.EffectPage"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/ingredients": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ingredients"
				],
				"summary": "List ingredients",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/report.IngredientRow"
											}
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/ingredients/{name}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ingredients"
				],
				"summary": "Get ingredient",
				"description": "Traits, statistics, compatible ingredients, valuable potions and potion groups",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive)",
						"name": "name",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/report.IngredientPage"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/ingredients/{name}/potions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"ingredients"
				],
				"summary": "Valuable potions of an ingredient",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive)",
						"name": "name",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 20,
						"description": "Maximum potions, 0 for all",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/report.PotionView"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/potions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"potions"
				],
				"summary": "Enumerate potions",
				"parameters": [
					{
						"type": "string",
						"description": "Comma separated ingredients every potion must contain",
						"name": "require",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 20,
						"description": "Maximum potions, 0 for all",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/report.PotionView"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ValidationErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/potions/recommended": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"potions"
				],
				"summary": "Recommended potions",
				"parameters": [
					{
						"type": "integer",
						"default": 20,
						"description": "Maximum potions, 0 for all",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/report.PotionView"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness check",
				"description": "Returns OK and the loaded dataset version",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					}
				}
			}
		},
		"/version": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Build version",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.VersionInfo"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"brewing.Options": {
			"type": "object",
			"properties": {
				"max_ingredients": {
					"type": "integer"
				},
				"workers": {
					"type": "integer"
				},
				"pure_only": {
					"type": "boolean"
				},
				"require_improvement": {
					"type": "boolean"
				}
			}
		},
		"dataset.Info": {
			"type": "object",
			"properties": {
				"version": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"checksum": {
					"type": "string"
				}
			}
		},
		"domain.EffectSummary": {
			"type": "object",
			"properties": {
				"effect": {
					"type": "string"
				},
				"ingredient_count": {
					"type": "integer"
				},
				"median_magnitude": {
					"type": "number",
					"x-nullable": true
				},
				"median_duration": {
					"type": "number",
					"x-nullable": true
				},
				"median_price": {
					"type": "number",
					"x-nullable": true
				},
				"median_accessibility": {
					"type": "number",
					"x-nullable": true
				}
			}
		},
		"domain.IngredientSummary": {
			"type": "object",
			"properties": {
				"ingredient": {
					"type": "string"
				},
				"potion_count": {
					"type": "integer"
				},
				"median_magnitude": {
					"type": "number",
					"x-nullable": true
				},
				"median_duration": {
					"type": "number",
					"x-nullable": true
				},
				"median_price": {
					"type": "number",
					"x-nullable": true
				},
				"average_potency_price": {
					"type": "number",
					"x-nullable": true
				},
				"average_potion_price": {
					"type": "number",
					"x-nullable": true
				},
				"median_potion_price": {
					"type": "number",
					"x-nullable": true
				}
			}
		},
		"handler.BrewResponse": {
			"type": "object",
			"properties": {
				"potion": {
					"$ref": "#/definitions/report.PotionView"
				}
			}
		},
		"handler.DataResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"data": {}
			}
		},
		"handler.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"handler.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"dataset": {
					"type": "string"
				}
			}
		},
		"handler.ValidationErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"handler.VersionInfo": {
			"type": "object",
			"properties": {
				"version": {
					"type": "string"
				},
				"go_version": {
					"type": "string"
				},
				"build_time": {
					"type": "string"
				},
				"git_commit": {
					"type": "string"
				}
			}
		},
		"report.EffectPage": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"effect_type": {
					"type": "string"
				},
				"base_cost": {
					"type": "number"
				},
				"summary": {
					"$ref": "#/definitions/domain.EffectSummary"
				},
				"ingredients": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/report.PotencyView"
					}
				}
			}
		},
		"report.EffectRow": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"effect_type": {
					"type": "string",
					"enum": [
						"beneficial",
						"harmful"
					]
				},
				"base_cost": {
					"type": "number"
				},
				"summary": {
					"$ref": "#/definitions/domain.EffectSummary"
				}
			}
		},
		"report.EffectView": {
			"type": "object",
			"properties": {
				"effect": {
					"type": "string"
				},
				"magnitude": {
					"type": "number"
				},
				"duration": {
					"type": "number"
				},
				"price": {
					"type": "number"
				}
			}
		},
		"report.GroupView": {
			"type": "object",
			"properties": {
				"effects": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/report.EffectView"
					}
				},
				"price": {
					"type": "number"
				},
				"combinations": {
					"type": "array",
					"items": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				}
			}
		},
		"report.Index": {
			"type": "object",
			"properties": {
				"run_id": {
					"type": "string"
				},
				"dataset": {
					"$ref": "#/definitions/dataset.Info"
				},
				"ingredients": {
					"type": "integer"
				},
				"effects": {
					"type": "integer"
				},
				"traits": {
					"type": "integer"
				},
				"options": {
					"$ref": "#/definitions/brewing.Options"
				}
			}
		},
		"report.IngredientPage": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"value": {
					"type": "number"
				},
				"plantable": {
					"type": "boolean"
				},
				"vendor_rarity": {
					"type": "string",
					"x-nullable": true
				},
				"unique_to": {
					"type": "string",
					"x-nullable": true
				},
				"accessibility": {
					"type": "number"
				},
				"effects": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"traits": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/report.TraitView"
					}
				},
				"summary": {
					"$ref": "#/definitions/domain.IngredientSummary"
				},
				"compatible": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"potions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/report.PotionView"
					}
				},
				"groups": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/report.GroupView"
					}
				}
			}
		},
		"report.IngredientRow": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"value": {
					"type": "number"
				},
				"plantable": {
					"type": "boolean"
				},
				"vendor_rarity": {
					"type": "string",
					"x-nullable": true,
					"enum": [
						"common",
						"uncommon",
						"rare",
						"limited"
					]
				},
				"unique_to": {
					"type": "string",
					"x-nullable": true
				},
				"accessibility": {
					"type": "number"
				},
				"effects": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"report.PotencyView": {
			"type": "object",
			"properties": {
				"ingredient": {
					"type": "string"
				},
				"magnitude": {
					"type": "number"
				},
				"duration": {
					"type": "number"
				},
				"price": {
					"type": "number"
				},
				"accessibility": {
					"type": "number"
				}
			}
		},
		"report.PotionView": {
			"type": "object",
			"properties": {
				"ingredients": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"effects": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/report.EffectView"
					}
				},
				"price": {
					"type": "number"
				},
				"accessibility": {
					"type": "number"
				},
				"relative_value": {
					"type": "number"
				},
				"availability": {
					"type": "string",
					"enum": [
						"plantable",
						"common",
						"uncommon",
						"rare"
					]
				}
			}
		},
		"report.TraitView": {
			"type": "object",
			"properties": {
				"order": {
					"type": "integer"
				},
				"effect": {
					"type": "string"
				},
				"magnitude": {
					"type": "number"
				},
				"duration": {
					"type": "number"
				},
				"price": {
					"type": "number"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Skyrim Alchemy API",
	Description:      "Read-only alchemy engine: ingredients, effects, potion brewing and ranking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
