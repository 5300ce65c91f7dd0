package cco

// BuiltCore is the fully populated, read-only result of Build: an
// AddressableTable backed by a PathTree. Once returned, it is never
// mutated again; evaluation only reads from it.
type BuiltCore struct {
	Table *AddressableTable
}

// dataBlock is an accepted "data" root block: its global block index and
// its sanitized label sequence (the full path under which it will be
// addressable).
type dataBlock struct {
	index       blockIndex
	identifiers Path
}

// Build consumes ds and produces a populated AddressableTable + PathTree,
// enforcing CCO semantics: only data/type blocks at root, label rules,
// default merging, and virtual rollups. If ds's root structure is invalid,
// Build returns every collected Issue as a *ParseErrors and a nil core.
func Build(ds *DocumentStore) (*BuiltCore, *ParseErrors) {
	var issues []Issue

	// --- Phase 1: root structure validation ---

	for i := range ds.attributes() {
		issues = append(issues, Issue{Kind: RootAttribute, Index: i, detail: "attribute at document root"})
	}

	typeSpecs := map[Identifier]blockIndex{}     // sanitized type name -> type block index
	groups := map[Identifier][]dataBlock{}       // sanitized first label -> accepted data blocks
	var groupOrder []Identifier                  // first-encountered order of group keys
	var typeOrder []Identifier                   // first-encountered order of type names (diagnostics only)

	for i, rb := range ds.blocks() {
		i := blockIndex(i)
		block := rb.block
		switch block.Type {
		case "data":
			if len(block.Labels) == 0 {
				issues = append(issues, Issue{Kind: DataBlockLabelMissing, Index: int(i), detail: "data block with no labels"})
				continue
			}
			idents := make(Path, len(block.Labels))
			for k, label := range block.Labels {
				idents[k] = Sanitize(label)
			}
			groupKey := idents[0]
			existingGroup, seen := groups[groupKey]
			if !seen {
				groupOrder = append(groupOrder, groupKey)
			}

			var labelMismatch, labelCollision bool
			var conflictIdx blockIndex
			for _, existing := range existingGroup {
				if len(existing.identifiers) != len(idents) {
					labelMismatch = true
					conflictIdx = existing.index
					break
				}
				if existing.identifiers.Equal(idents) {
					labelCollision = true
					conflictIdx = existing.index
					break
				}
			}
			switch {
			case labelMismatch:
				issues = append(issues, Issue{
					Kind: DataBlockLabelMismatch, Existing: int(conflictIdx), New: int(i),
					detail: "data block \"" + groupKey.String() + "\" group has differing label counts",
				})
			case labelCollision:
				issues = append(issues, Issue{
					Kind: DataBlockLabelCollision, Existing: int(conflictIdx), New: int(i),
					detail: "data block path \"" + idents.String() + "\" already defined",
				})
			default:
				groups[groupKey] = append(existingGroup, dataBlock{index: i, identifiers: idents})
			}

		case "type":
			switch {
			case len(block.Labels) == 0:
				issues = append(issues, Issue{Kind: TypeBlockLabelMissing, Index: int(i), detail: "type block with no label"})
			case len(block.Labels) >= 2:
				issues = append(issues, Issue{Kind: TypeBlockTooManyLabels, Index: int(i), detail: "type block with more than one label"})
			default:
				typeName := Sanitize(block.Labels[0])
				if existing, collides := typeSpecs[typeName]; collides {
					issues = append(issues, Issue{
						Kind: TypeBlockLabelCollision, Existing: int(existing), New: int(i),
						detail: "type \"" + string(typeName) + "\" already defined",
					})
				} else {
					typeSpecs[typeName] = i
					typeOrder = append(typeOrder, typeName)
				}
			}

		default:
			issues = append(issues, Issue{Kind: UnknownBlockType, Index: int(i), detail: "block type \"" + block.Type + "\""})
		}
	}

	if len(issues) > 0 {
		return nil, &ParseErrors{Issues: issues}
	}

	table := NewAddressableTable()

	// --- Phase 2: addressable synthesis ---

	for _, groupKey := range groupOrder {
		for _, db := range groups[groupKey] {
			block := ds.getBlock(db.index).block
			path := db.identifiers

			// 1. Direct attributes.
			for _, attr := range sortedAttributes(block.Body.Attributes) {
				p := path.Append(Sanitize(attr.Name))
				if _, ok := table.insert(KindAttribute, p, attr.Expr); !ok {
					panic("cco: duplicate direct attribute at path " + p.String())
				}
			}

			// 2. Default attributes, from a matching type block, if any.
			if typeIdx, hasType := typeSpecs[groupKey]; hasType {
				typeBlock := ds.getBlock(typeIdx).block
				for _, attr := range sortedAttributes(typeBlock.Body.Attributes) {
					p := path.Append(Sanitize(attr.Name))
					// A pre-existing Attribute silently wins; no error.
					table.insert(KindDefaultAttribute, p, attr.Expr)
				}
			}

			// 3. Block rollup.
			node := table.Tree().GetOrInsert(path)
			blockExpr := rollupExpr(node, table, false)
			if _, ok := table.insert(KindBlock, path, blockExpr); !ok {
				panic("cco: duplicate block rollup at path " + path.String())
			}
		}
	}

	// --- Phase 3: virtual rollups ---

	for _, top := range table.Tree().TopLevelIdentifiers() {
		node := table.Tree().TopLevelNode(top)
		if node.value != nil {
			continue // top-level node already occupied by a single-label Block.
		}
		path := Path{top}
		virtualExpr := rollupExpr(node, table, true)
		table.insert(KindVirtual, path, virtualExpr)
	}

	return &BuiltCore{Table: table}, nil
}
