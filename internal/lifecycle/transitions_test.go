// Copyright 2026 The kpt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lifecycle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	porchapi "github.com/kptdev/pkgsync/api/porch/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	restfake "k8s.io/client-go/rest/fake"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
)

func revision(lifecycle porchapi.PackageRevisionLifecycle) *porchapi.PackageRevision {
	return &porchapi.PackageRevision{
		TypeMeta: metav1.TypeMeta{
			Kind:       "PackageRevision",
			APIVersion: porchapi.SchemeGroupVersion.Identifier(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "blueprints:istions:v1",
			Namespace: "default",
		},
		Spec: porchapi.PackageRevisionSpec{
			PackageName:    "istions",
			Revision:       "v1",
			RepositoryName: "blueprints",
			Lifecycle:      lifecycle,
		},
	}
}

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	require.NoError(t, porchapi.AddToScheme(scheme))
	return scheme
}

func TestWithLifecycle(t *testing.T) {
	pr := revision(porchapi.PackageRevisionLifecycleDraft)
	updated := WithLifecycle(pr, porchapi.PackageRevisionLifecycleProposed)

	assert.Equal(t, porchapi.PackageRevisionLifecycleDraft, pr.Spec.Lifecycle, "input must not be mutated")
	assert.Equal(t, porchapi.PackageRevisionLifecycleProposed, updated.Spec.Lifecycle)
	assert.Equal(t, pr.Name, updated.Name)
}

func TestProposeAndMoveToDraft(t *testing.T) {
	testCases := map[string]struct {
		start      porchapi.PackageRevisionLifecycle
		transition func(t *Transitioner, ctx context.Context, pr *porchapi.PackageRevision) (*porchapi.PackageRevision, error)
		want       porchapi.PackageRevisionLifecycle
	}{
		"propose draft": {
			start:      porchapi.PackageRevisionLifecycleDraft,
			transition: (*Transitioner).Propose,
			want:       porchapi.PackageRevisionLifecycleProposed,
		},
		"move proposed to draft": {
			start:      porchapi.PackageRevisionLifecycleProposed,
			transition: (*Transitioner).MoveToDraft,
			want:       porchapi.PackageRevisionLifecycleDraft,
		},
	}

	for tn := range testCases {
		tc := testCases[tn]
		t.Run(tn, func(t *testing.T) {
			pr := revision(tc.start)
			c := fake.NewClientBuilder().
				WithScheme(newScheme(t)).
				WithObjects(pr).
				Build()
			tr := &Transitioner{Client: c}

			// Fetch the server copy first, as the page does on load.
			require.NoError(t, c.Get(context.Background(), client.ObjectKeyFromObject(pr), pr))

			updated, err := tc.transition(tr, context.Background(), pr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, updated.Spec.Lifecycle)
			assert.Equal(t, tc.start, pr.Spec.Lifecycle, "caller's copy must not change")
			assert.False(t, tr.InFlight())
		})
	}
}

func TestTransitionRefusedFromWrongState(t *testing.T) {
	c := fake.NewClientBuilder().WithScheme(newScheme(t)).Build()
	tr := &Transitioner{Client: c}

	_, err := tr.Propose(context.Background(), revision(porchapi.PackageRevisionLifecyclePublished))
	require.Error(t, err)

	_, err = tr.MoveToDraft(context.Background(), revision(porchapi.PackageRevisionLifecycleDraft))
	require.Error(t, err)
}

func TestFailedTransitionLeavesRevisionUnchanged(t *testing.T) {
	pr := revision(porchapi.PackageRevisionLifecycleDraft)
	c := fake.NewClientBuilder().
		WithScheme(newScheme(t)).
		WithObjects(pr).
		WithInterceptorFuncs(interceptor.Funcs{
			Update: func(_ context.Context, _ client.WithWatch, _ client.Object, _ ...client.UpdateOption) error {
				return fmt.Errorf("injected failure")
			},
		}).
		Build()
	tr := &Transitioner{Client: c}

	_, err := tr.Propose(context.Background(), pr)
	require.Error(t, err)
	assert.Equal(t, porchapi.PackageRevisionLifecycleDraft, pr.Spec.Lifecycle)
	assert.False(t, tr.InFlight(), "guard must be released on failure")

	// The guard must be usable again after the failure.
	release, ok := tr.guard.TryAcquire()
	require.True(t, ok)
	release()
}

func TestTransitionRejectedWhileInFlight(t *testing.T) {
	pr := revision(porchapi.PackageRevisionLifecycleDraft)
	c := fake.NewClientBuilder().
		WithScheme(newScheme(t)).
		WithObjects(pr).
		Build()
	tr := &Transitioner{Client: c}

	release, ok := tr.guard.TryAcquire()
	require.True(t, ok)
	defer release()

	_, err := tr.Propose(context.Background(), pr)
	require.ErrorIs(t, err, ErrTransitionInFlight)
}

func TestApprove(t *testing.T) {
	scheme := newScheme(t)
	codecs := serializer.NewCodecFactory(scheme)
	codec := codecs.LegacyCodec(porchapi.SchemeGroupVersion)

	proposed := revision(porchapi.PackageRevisionLifecycleProposed)
	published := revision(porchapi.PackageRevisionLifecyclePublished)

	encode := func(pr *porchapi.PackageRevision) io.ReadCloser {
		body, err := runtime.Encode(codec, pr)
		require.NoError(t, err)
		return io.NopCloser(bytes.NewReader(body))
	}

	restClient := &restfake.RESTClient{
		NegotiatedSerializer: codecs.WithoutConversion(),
		GroupVersion:         porchapi.SchemeGroupVersion,
		Client: restfake.CreateHTTPClient(func(req *http.Request) (*http.Response, error) {
			header := http.Header{}
			header.Set("Content-Type", "application/json")
			switch req.Method {
			case http.MethodGet:
				return &http.Response{StatusCode: http.StatusOK, Header: header, Body: encode(proposed)}, nil
			case http.MethodPut:
				return &http.Response{StatusCode: http.StatusOK, Header: header, Body: encode(published)}, nil
			default:
				return nil, fmt.Errorf("unexpected method %s", req.Method)
			}
		}),
	}

	c := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(published).
		Build()

	tr := &Transitioner{Client: c, Rest: restClient}
	updated, err := tr.Approve(context.Background(), proposed)
	require.NoError(t, err)
	assert.Equal(t, porchapi.PackageRevisionLifecyclePublished, updated.Spec.Lifecycle)
	assert.False(t, tr.InFlight())
}

func TestApproveRefusedFromDraft(t *testing.T) {
	scheme := newScheme(t)
	codecs := serializer.NewCodecFactory(scheme)
	codec := codecs.LegacyCodec(porchapi.SchemeGroupVersion)

	draft := revision(porchapi.PackageRevisionLifecycleDraft)
	body, err := runtime.Encode(codec, draft)
	require.NoError(t, err)

	restClient := &restfake.RESTClient{
		NegotiatedSerializer: codecs.WithoutConversion(),
		GroupVersion:         porchapi.SchemeGroupVersion,
		Client: restfake.CreateHTTPClient(func(req *http.Request) (*http.Response, error) {
			header := http.Header{}
			header.Set("Content-Type", "application/json")
			return &http.Response{StatusCode: http.StatusOK, Header: header, Body: io.NopCloser(bytes.NewReader(body))}, nil
		}),
	}

	c := fake.NewClientBuilder().WithScheme(scheme).Build()
	tr := &Transitioner{Client: c, Rest: restClient}

	_, err = tr.Approve(context.Background(), draft)
	require.Error(t, err)
	assert.False(t, tr.InFlight())
}
