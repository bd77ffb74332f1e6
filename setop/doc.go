// Package setop builds lazy virtual sets over operands implementing
// view.Hierarchical. A BinaryOp or Reduce value is itself a
// view.Hierarchical: it answers Level0Mask/Level1Mask/DataBlock by combining
// its operands' answers on demand, allocating nothing beyond the single
// returned block value, and can itself be used as an operand to a further
// operation, so expressions like And(Or(a, b), Xor(c, d)) build a tree
// without ever materializing an intermediate container.
package setop
