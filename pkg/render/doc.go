// Package render turns FP-trees into visual artifacts.
//
// Three output families are supported: Graphviz DOT text ([ToDOT]), raster
// and vector images produced from DOT via the embedded Graphviz engine
// ([RenderSVG], [RenderPNG]), and a plain-text tree view for terminals
// ([WriteText]).
//
// Rendering is a collaborator of the mining core, not part of it: it only
// consumes the read-only node view exposed by fptree.Tree.
package render
