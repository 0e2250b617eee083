package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for book documents.
//
// Title and author get English stemming plus term vectors for
// highlighting; description is searchable but not stored; category is an
// exact keyword for filtering; year is numeric for range queries.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Title - primary search target
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = en.AnalyzerName
	titleFieldMapping.Store = true
	titleFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("title", titleFieldMapping)

	// Author - searchable
	authorFieldMapping := bleve.NewTextFieldMapping()
	authorFieldMapping.Analyzer = en.AnalyzerName
	authorFieldMapping.Store = true
	authorFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("author", authorFieldMapping)

	// Description - searchable but not stored (too large)
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// ID - stored but not analyzed
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Category - exact match for filtering
	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = keyword.Name
	categoryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("category_id", categoryFieldMapping)

	// Publish year - range queries
	yearFieldMapping := bleve.NewNumericFieldMapping()
	yearFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("publish_year", yearFieldMapping)

	// Page count - stored for display
	pagesFieldMapping := bleve.NewNumericFieldMapping()
	pagesFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("page_count", pagesFieldMapping)

	// Timestamps for recency sorting
	createdFieldMapping := bleve.NewNumericFieldMapping()
	createdFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("created_at", createdFieldMapping)

	updatedFieldMapping := bleve.NewNumericFieldMapping()
	updatedFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("updated_at", updatedFieldMapping)

	indexMapping.DefaultMapping = docMapping

	return indexMapping
}
