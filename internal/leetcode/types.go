package leetcode

// Problem is the subset of a LeetCode question consumed by the solver.
type Problem struct {
	Content        string
	SampleTestCase string
}

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// questionResponse mirrors the GraphQL envelope. A null question node on a
// 200 response means the slug matched nothing.
type questionResponse struct {
	Data struct {
		Question *questionNode `json:"question"`
	} `json:"data"`
}

type questionNode struct {
	Content        string `json:"content"`
	SampleTestCase string `json:"sampleTestCase"`
}
