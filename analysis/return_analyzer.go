package analysis

import (
	"path"
	"strconv"

	"github.com/zeu5/nchain-rl-testing/core"
	"github.com/zeu5/nchain-rl-testing/util"
	"gonum.org/v1/gonum/stat"
)

type returnDataset struct {
	Episodes []int
	Returns  []float64
	// MeanReturn is the mean over all recorded episodes.
	MeanReturn float64
}

func (r *returnDataset) Copy() *returnDataset {
	return &returnDataset{
		Episodes:   util.CopyIntSlice(r.Episodes),
		Returns:    util.CopyFloatSlice(r.Returns),
		MeanReturn: r.MeanReturn,
	}
}

// ReturnAnalyzer records the undiscounted return of every episode.
type ReturnAnalyzer struct {
	dataset *returnDataset
}

var _ core.Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{
		dataset: &returnDataset{
			Episodes: make([]int, 0),
			Returns:  make([]float64, 0),
		},
	}
}

func (r *ReturnAnalyzer) Reset() {
	r.dataset = &returnDataset{
		Episodes: make([]int, 0),
		Returns:  make([]float64, 0),
	}
}

func (r *ReturnAnalyzer) Analyze(eCtx *core.EpisodeContext, trace *core.Trace) {
	r.dataset.Episodes = append(r.dataset.Episodes, eCtx.Episode)
	r.dataset.Returns = append(r.dataset.Returns, trace.TotalReward())
	r.dataset.MeanReturn = stat.Mean(r.dataset.Returns, nil)
}

func (r *ReturnAnalyzer) DataSet() core.DataSet {
	return r.dataset.Copy()
}

type ReturnAnalyzerConstructor struct {
}

var _ core.AnalyzerConstructor = &ReturnAnalyzerConstructor{}

func NewReturnAnalyzerConstructor() *ReturnAnalyzerConstructor {
	return &ReturnAnalyzerConstructor{}
}

func (r *ReturnAnalyzerConstructor) NewAnalyzer(_ int) core.Analyzer {
	return NewReturnAnalyzer()
}

type ReturnComparator struct {
	savePath string
}

var _ core.Comparator = &ReturnComparator{}

func NewReturnComparator(savePath string) *ReturnComparator {
	return &ReturnComparator{
		savePath: path.Join(savePath, "returns.json"),
	}
}

func (r *ReturnComparator) Compare(experimentNames []string, datasets []core.DataSet) {
	out := make(map[string]*returnDataset)
	for i, name := range experimentNames {
		d, ok := datasets[i].(*returnDataset)
		if !ok {
			continue
		}
		out[name] = d
	}

	util.SaveJson(r.savePath, out)
}

type ReturnComparatorConstructor struct {
	savePath string
}

var _ core.ComparatorConstructor = &ReturnComparatorConstructor{}

func NewReturnComparatorConstructor(savePath string) *ReturnComparatorConstructor {
	return &ReturnComparatorConstructor{
		savePath: savePath,
	}
}

func (r *ReturnComparatorConstructor) NewComparator(run int) core.Comparator {
	return NewReturnComparator(path.Join(r.savePath, strconv.Itoa(run)))
}
