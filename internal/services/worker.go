package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Mtar786/resume-ats-analyzer/internal/models"
)

// ErrPoolStopped is returned by Submit after the pool has been shut down.
var ErrPoolStopped = errors.New("analysis pool stopped")

// AnalysisPool bounds how many analyses run concurrently. Each request stays
// synchronous: Submit blocks until a worker has produced the report. The
// pipeline itself holds no shared mutable state, so workers need no locking.
type AnalysisPool interface {
	Start(ctx context.Context)
	Stop()
	Submit(ctx context.Context, doc models.Document, jobDescription string) (*models.AnalysisReport, error)
}

type analysisJob struct {
	doc            models.Document
	jobDescription string
	result         chan analysisResult
}

type analysisResult struct {
	report *models.AnalysisReport
	err    error
}

type analysisPool struct {
	analyzer    AnalyzerService
	jobQueue    chan analysisJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewAnalysisPool(analyzer AnalyzerService, concurrency int) AnalysisPool {
	return &analysisPool{
		analyzer:    analyzer,
		jobQueue:    make(chan analysisJob, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements AnalysisPool.
func (p *analysisPool) Start(ctx context.Context) {
	log.Printf("🚀 Starting analysis pool with %d workers\n", p.concurrency)

	for i := 0; i < p.concurrency; i++ {
		p.wg.Add(1)
		go p.processJobs(ctx, i+1)
	}
}

// Stop implements AnalysisPool.
func (p *analysisPool) Stop() {
	log.Println("🛑 Stopping analysis pool...")
	close(p.stopChan)
	p.wg.Wait()
	log.Println("✅ Analysis pool stopped")
}

// Submit implements AnalysisPool. It enqueues the request and waits for the
// report. The wait for a free worker honors ctx; the analysis itself runs to
// completion once started (it finishes in well under a second for typical
// documents).
func (p *analysisPool) Submit(ctx context.Context, doc models.Document, jobDescription string) (*models.AnalysisReport, error) {
	job := analysisJob{
		doc:            doc,
		jobDescription: jobDescription,
		result:         make(chan analysisResult, 1),
	}

	select {
	case p.jobQueue <- job:
	case <-p.stopChan:
		return nil, ErrPoolStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-job.result:
		return res.report, res.err
	case <-p.stopChan:
		return nil, ErrPoolStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *analysisPool) processJobs(ctx context.Context, workerID int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case job := <-p.jobQueue:
			report, err := p.analyzer.Analyze(ctx, job.doc, job.jobDescription)
			if err != nil {
				log.Printf("❌ Worker #%d failed to analyze %q: %v\n", workerID, job.doc.Filename, err)
			}
			job.result <- analysisResult{report: report, err: err}
		}
	}
}
