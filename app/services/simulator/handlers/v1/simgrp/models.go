package simgrp

// newExperiment is the request model for an ad hoc experiment run.
type newExperiment struct {
	N               int     `json:"n"`
	Dims            int     `json:"dims"`
	Clients         int     `json:"n_clients"`
	PercentCensored float64 `json:"percent_censored"`
	Samples         int     `json:"n_samples"`
	Strategy        string  `json:"strategy"`
	BoxWidth        int     `json:"box_width"`
	BoxHeight       int     `json:"box_height"`
	Trials          int     `json:"trials"`
	Seed            uint64  `json:"seed"`
}

// sweepStatus reports the progress of the configured sweep.
type sweepStatus struct {
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
	Done      bool `json:"done"`
}
