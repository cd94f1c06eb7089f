package openapi

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/modelgen/modelgen/pkg/model"
)

// Pagination defaults of list endpoints
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

func collectionPath(entity model.Entity) string {
	return "/" + entity.TableName
}

func itemPath(entity model.Entity) string {
	return "/" + entity.TableName + "/{id}"
}

func relationPath(from, to model.Entity) string {
	return "/" + from.TableName + "/{id}/" + to.TableName
}

func idParameter() *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithDescription("Resource identifier").
			WithSchema(openapi3.NewIntegerSchema()),
	}
}

func paginationParameters() openapi3.Parameters {
	return openapi3.Parameters{
		{Value: openapi3.NewQueryParameter("page").
			WithDescription("Page number").
			WithSchema(openapi3.NewIntegerSchema().WithDefault(DefaultPage))},
		{Value: openapi3.NewQueryParameter("limit").
			WithDescription("Items per page").
			WithSchema(openapi3.NewIntegerSchema().WithDefault(DefaultLimit))},
		{Value: openapi3.NewQueryParameter("sort").
			WithDescription("Sort field").
			WithSchema(openapi3.NewStringSchema())},
	}
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(schema),
	}
}

func jsonBody(schema *openapi3.SchemaRef) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(schema),
	}
}

func listSchema(item *openapi3.SchemaRef) *openapi3.Schema {
	pagination := openapi3.NewObjectSchema().
		WithProperty("page", openapi3.NewIntegerSchema()).
		WithProperty("limit", openapi3.NewIntegerSchema()).
		WithProperty("total", openapi3.NewIntegerSchema()).
		WithProperty("pages", openapi3.NewIntegerSchema())

	data := openapi3.NewArraySchema()
	data.Items = item

	return openapi3.NewObjectSchema().
		WithProperty("data", data).
		WithProperty("pagination", pagination)
}

// crudPaths returns the collection and item path items of one entity
func crudPaths(entity model.Entity, ref *openapi3.SchemaRef, components *openapi3.Components) (*openapi3.PathItem, *openapi3.PathItem) {
	name := model.PascalCase(entity.Name)
	tags := []string{entity.Name}
	notFound := responseRef(components, ResponseNotFound)
	invalid := responseRef(components, ResponseValidationError)

	collection := &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        tags,
			Summary:     fmt.Sprintf("List all %s", entity.TableName),
			OperationID: "list" + name,
			Parameters:  paginationParameters(),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse(
					fmt.Sprintf("List of %s", entity.TableName),
					openapi3.NewSchemaRef("", listSchema(ref)))),
			),
		},
		Post: &openapi3.Operation{
			Tags:        tags,
			Summary:     fmt.Sprintf("Create a new %s", entity.Name),
			OperationID: "create" + name,
			RequestBody: jsonBody(ref),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusCreated, jsonResponse(fmt.Sprintf("%s created", name), ref)),
				openapi3.WithStatus(http.StatusBadRequest, invalid),
			),
		},
	}

	item := &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        tags,
			Summary:     fmt.Sprintf("Get %s by ID", entity.Name),
			OperationID: "get" + name,
			Parameters:  openapi3.Parameters{idParameter()},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse(fmt.Sprintf("%s found", name), ref)),
				openapi3.WithStatus(http.StatusNotFound, notFound),
			),
		},
		Put: &openapi3.Operation{
			Tags:        tags,
			Summary:     fmt.Sprintf("Update %s", entity.Name),
			OperationID: "update" + name,
			Parameters:  openapi3.Parameters{idParameter()},
			RequestBody: jsonBody(ref),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse(fmt.Sprintf("%s updated", name), ref)),
				openapi3.WithStatus(http.StatusNotFound, notFound),
				openapi3.WithStatus(http.StatusBadRequest, invalid),
			),
		},
		Delete: &openapi3.Operation{
			Tags:        tags,
			Summary:     fmt.Sprintf("Delete %s", entity.Name),
			OperationID: "delete" + name,
			Parameters:  openapi3.Parameters{idParameter()},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusNoContent, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().WithDescription(fmt.Sprintf("%s deleted", name)),
				}),
				openapi3.WithStatus(http.StatusNotFound, notFound),
			),
		},
	}

	return collection, item
}

// relationPathItem lists the to-side records reachable from one from-side record
func relationPathItem(rel model.ResolvedRelationship, toRef *openapi3.SchemaRef, components *openapi3.Components) *openapi3.PathItem {
	from, to := *rel.FromEntity, *rel.ToEntity

	items := openapi3.NewArraySchema()
	items.Items = toRef

	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{from.Name},
			Summary:     fmt.Sprintf("Get %s for %s", to.TableName, from.Name),
			OperationID: "list" + model.PascalCase(from.Name) + model.PascalCase(to.TableName),
			Parameters:  openapi3.Parameters{idParameter()},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse(
					fmt.Sprintf("Related %s", to.TableName),
					openapi3.NewSchemaRef("", items))),
				openapi3.WithStatus(http.StatusNotFound, responseRef(components, ResponseNotFound)),
			),
		},
	}
}
