package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ContextWithClaims returns a new context with the given Claims attached.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts Claims from the context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// UnaryAuthInterceptor returns a gRPC unary server interceptor for JWT auth.
func UnaryAuthInterceptor(jwtService *JWTService, skipMethods []string) grpc.UnaryServerInterceptor {
	skipSet := make(map[string]struct{}, len(skipMethods))
	for _, m := range skipMethods {
		skipSet[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		// Whitelisted methods run without a token, but still pick up caller
		// identity when a valid one is sent.
		if _, skip := skipSet[info.FullMethod]; skip {
			if claims, ok := bearerClaims(ctx, jwtService); ok {
				ctx = ContextWithClaims(ctx, claims)
			}
			return handler(ctx, req)
		}

		claims, ok := bearerClaims(ctx, jwtService)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization token")
		}

		return handler(ContextWithClaims(ctx, claims), req)
	}
}

// bearerClaims extracts and validates the bearer token from incoming metadata.
func bearerClaims(ctx context.Context, jwtService *JWTService) (*Claims, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, false
	}

	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader[0], "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}
