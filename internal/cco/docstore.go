package cco

import "github.com/hashicorp/hcl/v2/hclsyntax"

// sourceIndex identifies one inserted document body.
type sourceIndex int

// attrIndex and blockIndex identify a root attribute or root block across
// the whole DocumentStore, in insertion order.
type attrIndex int
type blockIndex int

// rootAttribute pairs a root attribute with the document it came from.
type rootAttribute struct {
	source sourceIndex
	attr   *hclsyntax.Attribute
}

// rootBlock pairs a root block with the document it came from.
type rootBlock struct {
	source sourceIndex
	block  *hclsyntax.Block
}

// DocumentStore is an append-only table of parsed document bodies, with
// stable per-document, per-attribute, and per-block indices and their
// source paths. It exists purely for indexing and diagnostic provenance;
// no validation happens here. Any parsable body is accepted.
type DocumentStore struct {
	sources        []*string
	rootAttributes []rootAttribute
	rootBlocks     []rootBlock
}

// NewDocumentStore returns an empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Insert assigns a new source index to body and appends each of its
// top-level attributes and blocks to the respective table, paired with
// that source index. sourcePath, if non-nil, is recorded for diagnostics.
func (ds *DocumentStore) Insert(body *hclsyntax.Body, sourcePath *string) {
	si := sourceIndex(len(ds.sources))
	ds.sources = append(ds.sources, sourcePath)

	for _, attr := range body.Attributes {
		ds.rootAttributes = append(ds.rootAttributes, rootAttribute{source: si, attr: attr})
	}
	for _, block := range body.Blocks {
		ds.rootBlocks = append(ds.rootBlocks, rootBlock{source: si, block: block})
	}
}

// SourceCount returns the number of documents inserted so far.
func (ds *DocumentStore) SourceCount() int { return len(ds.sources) }

// attributes iterates the root-attribute table in insertion order.
func (ds *DocumentStore) attributes() []rootAttribute { return ds.rootAttributes }

// blocks iterates the root-block table in insertion order.
func (ds *DocumentStore) blocks() []rootBlock { return ds.rootBlocks }

// getAttribute returns the root attribute at global index i.
func (ds *DocumentStore) getAttribute(i attrIndex) rootAttribute { return ds.rootAttributes[i] }

// getBlock returns the root block at global index i.
func (ds *DocumentStore) getBlock(i blockIndex) rootBlock { return ds.rootBlocks[i] }

// sourcePath returns the recorded source path for si, or nil.
func (ds *DocumentStore) sourcePath(si sourceIndex) *string { return ds.sources[si] }
