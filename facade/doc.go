// Package facade wraps a tmdb.API with a concurrency cap, a single error
// policy and cached session state.
//
// Every method acquires one permit from a weighted semaphore before calling
// the API and releases it when the call returns. With the default cap of 30,
// the 31st concurrent caller waits until a permit frees up.
//
// # Usage
//
//	api, _ := tmdb.NewClient(&cfg, transport.NewHTTPTransport(logger), logger)
//	client, err := facade.New(api,
//		facade.WithMaxConcurrent(10),
//		facade.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	session, err := client.GetSessionWithoutToken(ctx, func(ctx context.Context, t *tmdb.Token) (bool, error) {
//		fmt.Printf("approve https://www.themoviedb.org/authenticate/%s then press enter\n", t.RequestToken)
//		_, err := bufio.NewReader(os.Stdin).ReadString('\n')
//		return err == nil, err
//	})
//
//	account, err := client.GetAccount(ctx)
//	lists, err := client.GetAccountLists(ctx, tmdb.PageOptions{})
//
// # Error Handling
//
// With ThrowOnError enabled (the default) a failed call returns an *APIError
// wrapping the transport or decode error together with TMDb's status payload.
// With it disabled a failed call returns the zero value and a nil error, so a
// nil result means either "no content" or "failed".
//
// Some errors are returned whatever the policy:
//
//   - NotInitializedError (matches ErrNotInitialized): cached state read before it was fetched
//   - ErrInvalidConcurrency: New was given a cap below one
//   - tmdb.ErrPrecondition: an option has no configured wire value
//   - context errors while waiting for a permit
package facade
