package dispatch

import "github.com/greenshot/hqx/internal/pattern"

// cornerRule says how the corner of a block facing the NW neighbour is
// drawn. The codes are those of the compact hq2x table, where every one of
// the 256 case arms reduces to one rule per corner.
type cornerRule uint8

const (
	ruleNW      cornerRule = 1  // 3:1 towards NW
	ruleW       cornerRule = 2  // 3:1 towards W
	ruleN       cornerRule = 3  // 3:1 towards N
	ruleOpen    cornerRule = 4  // 2:1:1 of W and N
	ruleNWN     cornerRule = 5  // 2:1:1 of NW and N
	ruleNWW     cornerRule = 6  // 2:1:1 of NW and W
	ruleEdge    cornerRule = 12 // W alike N: 2:1:1, else copy
	ruleBroad   cornerRule = 13 // W alike N: 2:3:3, else copy
	rulePoint   cornerRule = 14 // W alike N: 14:1:1, else copy
	ruleEdgeNW  cornerRule = 15 // W alike N: 2:1:1, else 3:1 NW
	ruleFullNW  cornerRule = 16 // W alike N: 6:1:1, else 3:1 NW
	ruleBroadNW cornerRule = 17 // W alike N: 2:3:3, else 3:1 NW
	ruleShallow cornerRule = 18 // N alike E: 5:2:1 of N and W, else 3:1 W
	ruleSteep   cornerRule = 19 // S alike W: 5:2:1 of W and N, else 3:1 N
)

// broad reports whether the corner's diagonal runs on past the block,
// which the larger factors draw as a long block along one edge.
func (r cornerRule) broad() bool {
	return r == ruleBroad || r == ruleBroadNW
}

// cornerRules holds the rule of the top-left corner for every pattern.
// Rows are the high nibble (E, SW, S, SE), columns the low one
// (NW, N, NE, W). The other corners look up the rotated pattern.
//
// The table is symmetric under the NW-SE transpose once W and N rules are
// swapped; TestCornerRulesTranspose holds it to that.
var cornerRules = [256]cornerRule{
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 15, 12, 5, 3, 17, 13,
	4, 4, 6, 18, 4, 4, 6, 18, 5, 3, 12, 12, 5, 3, 1, 12,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 17, 13, 5, 3, 16, 14,
	4, 4, 6, 18, 4, 4, 6, 18, 5, 3, 16, 12, 5, 3, 1, 14,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 19, 12, 12, 5, 19, 16, 12,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 16, 12, 5, 3, 16, 12,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 19, 1, 12, 5, 19, 1, 14,
	4, 4, 6, 2, 4, 4, 6, 18, 5, 3, 16, 12, 5, 19, 1, 14,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 15, 12, 5, 3, 17, 13,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 16, 12, 5, 3, 16, 12,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 17, 13, 5, 3, 16, 14,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 16, 13, 5, 3, 1, 14,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 16, 12, 5, 3, 16, 13,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 16, 12, 5, 3, 1, 12,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 16, 12, 5, 3, 1, 14,
	4, 4, 6, 2, 4, 4, 6, 2, 5, 3, 1, 12, 5, 3, 1, 14,
}

// cornerRulesOf returns the rule of each corner of the block for p, in
// corner order.
func cornerRulesOf(p pattern.Pattern) [4]cornerRule {
	var out [4]cornerRule
	for k := range out {
		out[k] = cornerRules[rotate(p, k)]
	}
	return out
}
