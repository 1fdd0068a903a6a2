// Package graphml loads undirected, distance-weighted graphs from GraphML
// documents into core.Graph.
//
// Vertices are added in document order, so the i-th <node> element gets
// vertex index i. Edges are added in document order too; an edge whose
// endpoint was not declared as a <node> adds that vertex on first sight.
//
// The edge weight is read from the <data> child whose key is declared with
// attr.name equal to the weight attribute ("distance" unless changed with
// WithWeightAttr). A missing value falls back to the key's <default>; with
// neither, the edge is rejected.
//
// Only the first <graph> element is read. Directed graphs are rejected.
package graphml
