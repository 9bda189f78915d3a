package recipe

// SelectBest 從候選中挑出分數最高者
// 以第一筆為初始值做線性掃描，只有嚴格大於才替換，
// 因此同分時最先出現的候選勝出；缺漏分數比較時視為 0。
// 呼叫端必須保證 candidates 非空（由 Search 的錯誤約定保證）。
func SelectBest(candidates []Candidate) Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score() > best.Score() {
			best = c
		}
	}
	return best
}
