// Package swaggerui bundles a Swagger UI release and serves it, together with
// the API documents it displays, from any Go HTTP server.
//
// A SwaggerUI is built once from a Config and then only resolves request
// paths, so one value can back many concurrent requests:
//
//	ui, err := swaggerui.New(swaggerui.Config{
//		MountPath: "/swagger-ui",
//		Sources:   []swaggerui.DocSource{{URL: "/openapi.json", Body: spec}},
//	})
//	if err != nil {
//		return err
//	}
//	mux.Handle("/swagger-ui/", ui)
//
// Hosts that do their own response writing can call Resolve instead.
package swaggerui
