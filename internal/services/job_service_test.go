package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"job-portal-api/config"
	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	admin     = dto.Caller{UserID: 1, Role: models.RoleAdmin}
	recruiter = dto.Caller{UserID: 2, Role: models.RoleRecruiter}
	rival     = dto.Caller{UserID: 3, Role: models.RoleRecruiter}
	candidate = dto.Caller{UserID: 4, Role: models.RoleCandidate}
	company   = dto.Caller{UserID: 5, Role: models.RoleCompany}
)

func setupJobServiceTest(t *testing.T, emptyNotFound bool) (context.Context, services.JobService, *fakeStore) {
	store := newFakeStore()
	svc := services.NewJobService(store, config.ListingConfig{EmptyResultNotFound: emptyNotFound}, zaptest.NewLogger(t))
	return context.Background(), svc, store
}

func ptr[T any](v T) *T { return &v }

func eligibilityKind(k models.EligibilityKind) *models.EligibilityKind { return &k }

func validCreateRequest(caller dto.Caller) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Caller:         caller,
		Company:        "Acme",
		Position:       "Engineer",
		JobStatus:      models.JobStatusPending,
		JobType:        models.JobTypeFullTime,
		JobLocation:    ptr("Lisbon"),
		WorkplaceType:  models.WorkplaceInOffice,
		Categories:     []int64{1, 2},
		JobVacancy:     "3",
		JobSalary:      "40k",
		JobDeadline:    "2030-06-30",
		JobDescription: "Ship features",
		JobSkills:      []string{"go", "sql"},
		JobFacilities:  []int64{4},
		JobContact:     "hr@acme.test",
		EligibilityFields: dto.EligibilityFields{
			Eligibility:   eligibilityKind(models.EligibilityExperienced),
			ExperienceMin: ptr(3.0),
			ExperienceMax: ptr(5.0),
		},
	}
}

func storedJob(id, createdBy int64) *models.Job {
	job := &models.Job{
		ID:               id,
		Company:          "Acme",
		Position:         "Engineer",
		JobStatus:        models.JobStatusPending,
		JobType:          models.JobTypeFullTime,
		JobLocation:      ptr("Lisbon"),
		WorkplaceType:    models.WorkplaceInOffice,
		Categories:       []int64{1},
		JobVacancy:       "1",
		JobSalary:        "40k",
		JobDeadline:      "2030-06-30",
		JobDescription:   "Ship features",
		JobSkills:        []string{"go"},
		JobFacilities:    []int64{1},
		JobContact:       "hr@acme.test",
		VisibilityStatus: models.VisibilityAccepted,
		CreatedBy:        createdBy,
	}
	job.ApplyEligibility(models.ExperiencedEligibility{Min: 1, Max: 4})
	return job
}

func returnArg(args mock.Arguments) *models.Job { return args.Get(1).(*models.Job) }

// --- ListJobs ---

func TestJobService_ListJobs_VisibilityPerRole(t *testing.T) {
	tests := []struct {
		name     string
		caller   dto.Caller
		expected storage.JobVisibility
	}{
		{"candidate sees accepted only", candidate, storage.JobVisibility{}},
		{"recruiter sees own and accepted", recruiter, storage.JobVisibility{OwnerID: recruiter.UserID}},
		{"company scoped like recruiter", company, storage.JobVisibility{OwnerID: company.UserID}},
		{"admin unrestricted", admin, storage.JobVisibility{Unrestricted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, store := setupJobServiceTest(t, true)
			matchesScope := mock.MatchedBy(func(f storage.JobListFilter) bool {
				return f.Visibility == tt.expected
			})
			store.jobs.On("List", ctx, matchesScope).Return([]models.Job{*storedJob(1, 9)}, nil).Once()
			store.jobs.On("Count", ctx, matchesScope).Return(1, nil).Once()

			_, err := svc.ListJobs(ctx, &dto.ListJobsRequest{Caller: tt.caller, Page: 1, Limit: 5})
			require.NoError(t, err)
			store.jobs.AssertExpectations(t)
		})
	}
}

func TestJobService_ListJobs_Pagination(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	expectedFilter := storage.JobListFilter{
		Visibility: storage.JobVisibility{OwnerID: recruiter.UserID},
		Search:     "acme",
		Sort:       models.SortAZ,
		Limit:      3,
		Offset:     6,
	}
	store.jobs.On("List", ctx, expectedFilter).Return([]models.Job{*storedJob(7, 2)}, nil).Once()
	store.jobs.On("Count", ctx, expectedFilter).Return(7, nil).Once()

	page, err := svc.ListJobs(ctx, &dto.ListJobsRequest{Caller: recruiter, Search: "acme", Sort: models.SortAZ, Page: 3, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, page.Jobs, 1)
	assert.Equal(t, 7, page.TotalJobs)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.PageCount)
	store.jobs.AssertExpectations(t)
}

func TestJobService_ListJobs_EmptyResult(t *testing.T) {
	t.Run("not found by default", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("List", ctx, mock.Anything).Return([]models.Job{}, nil).Once()

		page, err := svc.ListJobs(ctx, &dto.ListJobsRequest{Caller: candidate, Page: 1, Limit: 5})
		assert.Nil(t, page)
		assert.ErrorIs(t, err, services.ErrNotFound)
		store.jobs.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("empty success when disabled", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, false)
		store.jobs.On("List", ctx, mock.Anything).Return([]models.Job{}, nil).Once()
		store.jobs.On("Count", ctx, mock.Anything).Return(0, nil).Once()

		page, err := svc.ListJobs(ctx, &dto.ListJobsRequest{Caller: candidate, Page: 1, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, page.Jobs)
		assert.Equal(t, 0, page.PageCount)
	})
}

func TestJobService_ListJobs_StoreFailureIsInternal(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("List", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.ListJobs(ctx, &dto.ListJobsRequest{Caller: candidate, Page: 1, Limit: 5})
	assert.ErrorIs(t, err, services.ErrInternal)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}

// --- GetJob ---

func TestJobService_GetJob(t *testing.T) {
	hidden := storedJob(10, recruiter.UserID)
	hidden.VisibilityStatus = models.VisibilityUnderReview

	t.Run("candidate cannot see unaccepted job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(10)).Return(hidden, nil).Once()

		_, err := svc.GetJob(ctx, &dto.GetJobRequest{Caller: candidate, ID: 10})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("creator sees own job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(10)).Return(hidden, nil).Once()

		job, err := svc.GetJob(ctx, &dto.GetJobRequest{Caller: recruiter, ID: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(10), job.ID)
	})

	t.Run("missing job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(99)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.GetJob(ctx, &dto.GetJobRequest{Caller: admin, ID: 99})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestJobService_ListJobsForReview_AdminOnly(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)

	_, err := svc.ListJobsForReview(ctx, recruiter)
	assert.ErrorIs(t, err, services.ErrForbidden)

	store.jobs.On("ListWithCreators", ctx).Return([]models.JobWithCreator{{Job: *storedJob(1, 2), Email: "r@x.test"}}, nil).Once()
	jobs, err := svc.ListJobsForReview(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobService_ListMyJobs(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("ListByCreator", ctx, recruiter.UserID).Return([]models.JobWithCreator{}, nil).Once()

	jobs, err := svc.ListMyJobs(ctx, recruiter)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	store.jobs.AssertExpectations(t)
}

// --- CreateJob ---

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	req := validCreateRequest(recruiter)

	store.jobs.On("ExistsByCompanyAndPosition", ctx, "Acme", "Engineer").Return(false, nil).Once()
	var created *models.Job
	store.jobs.On("Create", ctx, mock.AnythingOfType("*models.Job")).Run(func(args mock.Arguments) {
		created = returnArg(args)
	}).Return(storedJob(11, recruiter.UserID), nil).Once()

	_, err := svc.CreateJob(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, models.VisibilityUnderReview, created.VisibilityStatus)
	assert.Equal(t, recruiter.UserID, created.CreatedBy)
	assert.Equal(t, models.EligibilityExperienced, created.Eligibility)
	assert.Nil(t, created.StudentCurrentlyStudying)
	assert.Nil(t, created.YearSelection)
	require.NotNil(t, created.ExperienceMax)
	assert.Equal(t, 5.0, *created.ExperienceMax)
}

func TestJobService_CreateJob_CompanyAllowed(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("ExistsByCompanyAndPosition", ctx, "Acme", "Engineer").Return(false, nil).Once()
	store.jobs.On("Create", ctx, mock.AnythingOfType("*models.Job")).Return(storedJob(1, company.UserID), nil).Once()

	_, err := svc.CreateJob(ctx, validCreateRequest(company))
	assert.NoError(t, err)
}

func TestJobService_CreateJob_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *dto.CreateJobRequest)
		expectedErr error
		field       string
	}{
		{
			name:        "candidate cannot post",
			mutate:      func(r *dto.CreateJobRequest) { r.Caller = candidate },
			expectedErr: services.ErrForbidden,
		},
		{
			name:        "admin cannot post",
			mutate:      func(r *dto.CreateJobRequest) { r.Caller = admin },
			expectedErr: services.ErrForbidden,
		},
		{
			name: "eleven categories",
			mutate: func(r *dto.CreateJobRequest) {
				r.Categories = []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
			},
			expectedErr: services.ErrValidation,
			field:       "categories",
		},
		{
			name:        "no facilities",
			mutate:      func(r *dto.CreateJobRequest) { r.JobFacilities = []int64{} },
			expectedErr: services.ErrValidation,
			field:       "job_facilities",
		},
		{
			name: "experience max below min",
			mutate: func(r *dto.CreateJobRequest) {
				r.ExperienceMin, r.ExperienceMax = ptr(5.0), ptr(3.0)
			},
			expectedErr: services.ErrValidation,
			field:       "experience_max",
		},
		{
			name:        "experience missing max",
			mutate:      func(r *dto.CreateJobRequest) { r.ExperienceMax = nil },
			expectedErr: services.ErrValidation,
			field:       "experience_max",
		},
		{
			name:        "eligibility missing",
			mutate:      func(r *dto.CreateJobRequest) { r.Eligibility = nil },
			expectedErr: services.ErrValidation,
			field:       "eligibility",
		},
		{
			name: "fresher with All and a year",
			mutate: func(r *dto.CreateJobRequest) {
				r.Eligibility = eligibilityKind(models.EligibilityFresher)
				r.YearSelection = []string{"All", "2024"}
			},
			expectedErr: services.ErrValidation,
			field:       "year_selection",
		},
		{
			name:        "in-office without location",
			mutate:      func(r *dto.CreateJobRequest) { r.JobLocation = nil },
			expectedErr: services.ErrValidation,
			field:       "job_location",
		},
		{
			name:        "location too short",
			mutate:      func(r *dto.CreateJobRequest) { r.JobLocation = ptr("NY") },
			expectedErr: services.ErrValidation,
			field:       "job_location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, store := setupJobServiceTest(t, true)
			req := validCreateRequest(recruiter)
			tt.mutate(req)

			job, err := svc.CreateJob(ctx, req)
			assert.Nil(t, job)
			assert.ErrorIs(t, err, tt.expectedErr)
			if tt.field != "" {
				var verr *services.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.field, verr.Field)
			}
			store.jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestJobService_CreateJob_TenCategoriesAccepted(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	req := validCreateRequest(recruiter)
	req.Categories = []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	store.jobs.On("ExistsByCompanyAndPosition", ctx, "Acme", "Engineer").Return(false, nil).Once()
	store.jobs.On("Create", ctx, mock.AnythingOfType("*models.Job")).Return(storedJob(1, recruiter.UserID), nil).Once()

	_, err := svc.CreateJob(ctx, req)
	assert.NoError(t, err)
}

func TestJobService_CreateJob_Duplicate(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("ExistsByCompanyAndPosition", ctx, "Acme", "Engineer").Return(true, nil).Once()

	_, err := svc.CreateJob(ctx, validCreateRequest(recruiter))
	assert.ErrorIs(t, err, services.ErrConflict)
	store.jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_CreateJob_RemoteClearsLocation(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	req := validCreateRequest(recruiter)
	req.WorkplaceType = models.WorkplaceRemote
	req.JobLocation = ptr("ignored")

	store.jobs.On("ExistsByCompanyAndPosition", ctx, "Acme", "Engineer").Return(false, nil).Once()
	store.jobs.On("Create", ctx, mock.MatchedBy(func(j *models.Job) bool {
		return j.JobLocation == nil && j.WorkplaceType == models.WorkplaceRemote
	})).Return(storedJob(1, recruiter.UserID), nil).Once()

	_, err := svc.CreateJob(ctx, req)
	require.NoError(t, err)
	store.jobs.AssertExpectations(t)
}

// --- UpdateJob ---

func TestJobService_UpdateJob_Authorization(t *testing.T) {
	t.Run("other recruiter forbidden", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

		_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{Caller: rival, ID: 5, Position: ptr("Lead")})
		assert.ErrorIs(t, err, services.ErrForbidden)
		store.jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin may update any job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()
		store.jobs.On("Update", ctx, mock.MatchedBy(func(j *models.Job) bool {
			return j.Position == "Lead" && j.CreatedBy == recruiter.UserID
		})).Return(storedJob(5, recruiter.UserID), nil).Once()

		_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{Caller: admin, ID: 5, Position: ptr("Lead")})
		require.NoError(t, err)
		store.jobs.AssertExpectations(t)
	})

	t.Run("missing job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{Caller: admin, ID: 5})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestJobService_UpdateJob_SameBranchFallsBackToStored(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

	var written *models.Job
	store.jobs.On("Update", ctx, mock.AnythingOfType("*models.Job")).Run(func(args mock.Arguments) {
		written = returnArg(args)
	}).Return(storedJob(5, recruiter.UserID), nil).Once()

	// stored range is 1..4; only max is supplied
	_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{
		Caller:            recruiter,
		ID:                5,
		EligibilityFields: dto.EligibilityFields{ExperienceMax: ptr(6.0)},
	})
	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, 1.0, *written.ExperienceMin)
	assert.Equal(t, 6.0, *written.ExperienceMax)
	assert.Equal(t, models.VisibilityAccepted, written.VisibilityStatus)
}

func TestJobService_UpdateJob_SameBranchStillValidated(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

	// stored min is 1
	_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{
		Caller:            recruiter,
		ID:                5,
		EligibilityFields: dto.EligibilityFields{ExperienceMax: ptr(0.5)},
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestJobService_UpdateJob_SwitchBranch(t *testing.T) {
	t.Run("switch nulls previous branch", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

		var written *models.Job
		store.jobs.On("Update", ctx, mock.AnythingOfType("*models.Job")).Run(func(args mock.Arguments) {
			written = returnArg(args)
		}).Return(storedJob(5, recruiter.UserID), nil).Once()

		_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{
			Caller: recruiter,
			ID:     5,
			EligibilityFields: dto.EligibilityFields{
				Eligibility:   eligibilityKind(models.EligibilityFresher),
				YearSelection: []string{"2024", "2025"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, models.EligibilityFresher, written.Eligibility)
		assert.Equal(t, []string{"2024", "2025"}, written.YearSelection)
		assert.Nil(t, written.ExperienceMin)
		assert.Nil(t, written.ExperienceMax)
	})

	t.Run("switch without new branch fields fails", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

		_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{
			Caller:            recruiter,
			ID:                5,
			EligibilityFields: dto.EligibilityFields{Eligibility: eligibilityKind(models.EligibilityStudent)},
		})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "student_currently_studying", verr.Field)
	})
}

func TestJobService_UpdateJob_SwitchToRemoteDropsLocation(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()
	store.jobs.On("Update", ctx, mock.MatchedBy(func(j *models.Job) bool {
		return j.JobLocation == nil
	})).Return(storedJob(5, recruiter.UserID), nil).Once()

	remote := models.WorkplaceRemote
	_, err := svc.UpdateJob(ctx, &dto.UpdateJobRequest{Caller: recruiter, ID: 5, WorkplaceType: &remote})
	require.NoError(t, err)
	store.jobs.AssertExpectations(t)
}

// --- UpdateJobStatus ---

func TestJobService_UpdateJobStatus(t *testing.T) {
	comment := "looks good"

	t.Run("admin sets status", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("UpdateVisibility", ctx, int64(5), models.VisibilityAccepted, &comment).
			Return(storedJob(5, recruiter.UserID), nil).Once()

		job, err := svc.UpdateJobStatus(ctx, &dto.UpdateJobStatusRequest{
			Caller: admin, ID: 5, VisibilityStatus: models.VisibilityAccepted, AdminComment: &comment,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), job.ID)
	})

	t.Run("recruiter forbidden", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		_, err := svc.UpdateJobStatus(ctx, &dto.UpdateJobStatusRequest{Caller: recruiter, ID: 5, VisibilityStatus: models.VisibilityAccepted})
		assert.ErrorIs(t, err, services.ErrForbidden)
		store.jobs.AssertNotCalled(t, "UpdateVisibility", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		ctx, svc, _ := setupJobServiceTest(t, true)
		_, err := svc.UpdateJobStatus(ctx, &dto.UpdateJobStatusRequest{Caller: admin, ID: 5, VisibilityStatus: 7})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("missing job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("UpdateVisibility", ctx, int64(5), models.VisibilityHold, (*string)(nil)).
			Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateJobStatus(ctx, &dto.UpdateJobStatusRequest{Caller: admin, ID: 5, VisibilityStatus: models.VisibilityHold})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

// --- DeleteJob ---

func TestJobService_DeleteJob_CascadesInTransaction(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)
	store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

	var order []string
	store.apps.On("DeleteByJob", ctx, int64(5)).Run(func(mock.Arguments) { order = append(order, "applications") }).Return(int64(2), nil).Once()
	store.jobs.On("Delete", ctx, int64(5)).Run(func(mock.Arguments) { order = append(order, "job") }).Return(nil).Once()

	err := svc.DeleteJob(ctx, &dto.DeleteJobRequest{Caller: recruiter, ID: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"applications", "job"}, order)
	assert.Equal(t, 1, store.txCalls)
}

func TestJobService_DeleteJob_Failures(t *testing.T) {
	t.Run("forbidden deletes nothing", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()

		err := svc.DeleteJob(ctx, &dto.DeleteJobRequest{Caller: rival, ID: 5})
		assert.ErrorIs(t, err, services.ErrForbidden)
		store.apps.AssertNotCalled(t, "DeleteByJob", mock.Anything, mock.Anything)
		store.jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing job", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(nil, storage.ErrNotFound).Once()

		err := svc.DeleteJob(ctx, &dto.DeleteJobRequest{Caller: admin, ID: 5})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("store failure mid cascade is internal", func(t *testing.T) {
		ctx, svc, store := setupJobServiceTest(t, true)
		store.jobs.On("GetByID", ctx, int64(5)).Return(storedJob(5, recruiter.UserID), nil).Once()
		store.apps.On("DeleteByJob", ctx, int64(5)).Return(int64(1), nil).Once()
		store.jobs.On("Delete", ctx, int64(5)).Return(fmt.Errorf("statement timeout")).Once()

		err := svc.DeleteJob(ctx, &dto.DeleteJobRequest{Caller: admin, ID: 5})
		assert.ErrorIs(t, err, services.ErrInternal)
	})
}

func TestJobService_DeleteAllJobs(t *testing.T) {
	ctx, svc, store := setupJobServiceTest(t, true)

	_, err := svc.DeleteAllJobs(ctx, recruiter)
	assert.ErrorIs(t, err, services.ErrForbidden)

	store.apps.On("DeleteAll", ctx).Return(int64(4), nil).Once()
	store.jobs.On("DeleteAll", ctx).Return(int64(3), nil).Once()

	n, err := svc.DeleteAllJobs(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 1, store.txCalls)
}
